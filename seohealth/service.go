package seohealth

import (
	"context"

	"github.com/apex/log"

	"github.com/seo-audit-tool/backend/apierr"
	"github.com/seo-audit-tool/backend/urlutil"
)

// Service orchestrates fetch, normalize and recommend for SEO health.
type Service struct {
	fetcher  Fetcher
	demoMode bool
}

// NewService creates a Service backed by the given fetcher.
func NewService(fetcher Fetcher, demoMode bool) *Service {
	return &Service{fetcher: fetcher, demoMode: demoMode}
}

// NewServiceFromKey selects the live or synthetic fetcher based on whether
// a PageSpeed API key is configured.
func NewServiceFromKey(apiKey string, seed int64) *Service {
	if apiKey == "" {
		return NewService(NewSyntheticFetcher(seed), true)
	}
	return NewService(NewLiveFetcher(apiKey), false)
}

// Analyze runs the full pipeline for one URL.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	if err := urlutil.ValidateURL(req.URL); err != nil {
		return nil, apierr.Wrap(apierr.InvalidInput, "Invalid URL provided", err)
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = "mobile"
	}
	if strategy != "mobile" && strategy != "desktop" {
		return nil, apierr.New(apierr.InvalidInput, "Strategy must be \"mobile\" or \"desktop\"")
	}

	payload, err := s.fetcher.Fetch(ctx, req.URL, strategy)
	if err != nil {
		log.WithField("url", req.URL).WithError(err).Error("seo health fetch failed")
		return nil, err
	}

	lh := &payload.LighthouseResult
	result := &Result{
		URL:                req.URL,
		Strategy:           strategy,
		PerformanceScore:   categoryScore(lh, "performance"),
		SEOScore:           categoryScore(lh, "seo"),
		AccessibilityScore: categoryScore(lh, "accessibility"),
		BestPracticesScore: categoryScore(lh, "best-practices"),
		CoreWebVitals:      extractVitals(lh),
		Opportunities:      extractOpportunities(lh),
		Diagnostics:        extractDiagnostics(lh),
		Metadata: map[string]interface{}{
			"lighthouse_version": lh.LighthouseVersion,
			"fetch_time":         lh.FetchTime,
		},
	}
	if lh.UserAgent != "" {
		result.Metadata["user_agent"] = lh.UserAgent
	}
	if s.demoMode {
		result.Metadata["demo_mode"] = true
	}
	if result.Opportunities == nil {
		result.Opportunities = []Opportunity{}
	}

	result.Recommendations = recommend(result)

	log.WithField("url", req.URL).WithField("strategy", strategy).Info("seo health analysis complete")
	return result, nil
}
