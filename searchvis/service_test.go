package searchvis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRejectsInvalidURL(t *testing.T) {
	svc := NewService("", "", 1)
	_, err := svc.Analyze(context.Background(), Request{URL: "example.com"})
	assert.Error(t, err)
}

func TestAnalyzeSyntheticWithoutCredentials(t *testing.T) {
	svc := NewService("", "", 1)
	result, err := svc.Analyze(context.Background(), Request{URL: "https://example.com"})
	require.NoError(t, err)

	require.NotNil(t, result.GoogleData)
	require.NotNil(t, result.BingData)
	require.NotNil(t, result.IndexStatus)

	// Aggregate counts come from the Google payload.
	assert.Equal(t, result.GoogleData.IndexStatus.TotalPages, result.IndexStatus.TotalPages)
	assert.Equal(t, result.GoogleData.IndexStatus.IndexedPages, result.IndexStatus.IndexedPages)
	assert.Equal(t,
		result.IndexStatus.TotalPages-result.IndexStatus.IndexedPages,
		result.IndexStatus.NotIndexedPages)

	assert.Len(t, result.SearchPerformance, 5)
	assert.Len(t, result.Sitemaps, 2)
}

func TestAnalyzeSyntheticIndexCountsBounded(t *testing.T) {
	svc := NewService("", "", 7)
	for i := 0; i < 10; i++ {
		result, err := svc.Analyze(context.Background(), Request{URL: "https://example.com"})
		require.NoError(t, err)

		idx := result.IndexStatus
		assert.GreaterOrEqual(t, idx.TotalPages, 120)
		assert.LessOrEqual(t, idx.TotalPages, 200)
		assert.GreaterOrEqual(t, idx.IndexedPages, 0)
		assert.LessOrEqual(t, idx.IndexedPages, idx.TotalPages)
	}
}

func TestRecommendConnectAccountsRule(t *testing.T) {
	svc := NewService("", "", 1)
	result, err := svc.Analyze(context.Background(), Request{URL: "https://example.com"})
	require.NoError(t, err)

	assert.True(t, hasRecommendationContaining(result.Recommendations, "Connect your Google Search Console"),
		"missing connect-accounts advice without credentials")
}

func TestRecommendRuleTable(t *testing.T) {
	errs := 3
	warns := 2
	r := &Result{
		IndexStatus: &IndexStatus{
			TotalPages:   100,
			IndexedPages: 50,
			Errors:       &errs,
			Warnings:     &warns,
		},
		SearchPerformance: []SearchPerformance{
			{Query: "q", Clicks: 10, Impressions: 1000, CTR: 0.01, Position: 15},
		},
	}

	recs := recommend(r, true)
	assert.True(t, hasRecommendationContaining(recs, "50.0% of your pages are indexed"))
	assert.True(t, hasRecommendationContaining(recs, "3 indexing errors"))
	assert.True(t, hasRecommendationContaining(recs, "2 indexing warnings"))
	assert.True(t, hasRecommendationContaining(recs, "average CTR is 1.00%"))
	assert.True(t, hasRecommendationContaining(recs, "Average position is 15.0"))
	assert.True(t, hasRecommendationContaining(recs, "No sitemaps detected"))
	assert.False(t, hasRecommendationContaining(recs, "Connect your Google Search Console"))
}

func TestRecommendPositiveFallback(t *testing.T) {
	r := &Result{
		IndexStatus: &IndexStatus{TotalPages: 100, IndexedPages: 95},
		SearchPerformance: []SearchPerformance{
			{Query: "q", Clicks: 500, Impressions: 5000, CTR: 0.1, Position: 3.2},
		},
		Sitemaps: sampleSitemaps(),
	}

	recs := recommend(r, true)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "search visibility looks good")
}

func hasRecommendationContaining(recs []string, fragment string) bool {
	for _, r := range recs {
		if strings.Contains(r, fragment) {
			return true
		}
	}
	return false
}
