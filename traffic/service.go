package traffic

import (
	"context"
	"strings"

	"github.com/apex/log"

	"github.com/seo-audit-tool/backend/apierr"
	"github.com/seo-audit-tool/backend/urlutil"
)

type Service struct {
	estimator *Estimator
}

func NewService(seed int64) *Service {
	return &Service{estimator: NewEstimator(seed)}
}

// Estimate builds a full traffic estimate for one URL. Sections are
// skipped when the corresponding include flag is false.
func (s *Service) Estimate(_ context.Context, req *Request) (*Result, error) {
	if err := urlutil.ValidateURL(req.URL); err != nil {
		return nil, apierr.Wrap(apierr.InvalidInput, "invalid URL", err)
	}
	domain := urlutil.DomainFromURL(req.URL)
	log.WithField("domain", domain).Info("estimating traffic")

	metrics := s.estimator.metrics(domain)

	result := &Result{
		URL:             req.URL,
		Disclaimer:      Disclaimer,
		Metrics:         metrics,
		TrafficSources:  []Source{},
		TopCountries:    []Country{},
		TopKeywords:     []Keyword{},
		GrowthTrend:     s.estimator.growthTrend(),
		ConfidenceLevel: s.estimator.confidenceLevel(),
	}

	if req.IncludeSources == nil || *req.IncludeSources {
		result.TrafficSources = s.estimator.sources(metrics.MonthlyVisits)
	}
	if req.IncludeCountries == nil || *req.IncludeCountries {
		result.TopCountries = s.estimator.countries(metrics.MonthlyVisits)
	}
	if req.IncludeKeywords == nil || *req.IncludeKeywords {
		result.TopKeywords = s.estimator.keywords(domain)
	}

	result.Recommendations = recommend(result)
	return result, nil
}

// ComparisonEntry is one row of a multi-URL comparison. A per-URL failure
// is reported in place instead of failing the whole comparison.
type ComparisonEntry struct {
	URL    string  `json:"url,omitempty"`
	Error  string  `json:"error,omitempty"`
	Result *Result `json:"result,omitempty"`
}

type Comparison struct {
	Comparison    []ComparisonEntry `json:"comparison"`
	TotalCompared int               `json:"total_compared"`
}

func (s *Service) Compare(ctx context.Context, urls []string) *Comparison {
	entries := make([]ComparisonEntry, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		result, err := s.Estimate(ctx, &Request{URL: u})
		if err != nil {
			entries = append(entries, ComparisonEntry{URL: u, Error: err.Error()})
			continue
		}
		entries = append(entries, ComparisonEntry{Result: result})
	}
	return &Comparison{Comparison: entries, TotalCompared: len(entries)}
}
