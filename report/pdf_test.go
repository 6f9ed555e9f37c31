package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-audit-tool/backend/geo"
	"github.com/seo-audit-tool/backend/searchvis"
	"github.com/seo-audit-tool/backend/seohealth"
	"github.com/seo-audit-tool/backend/traffic"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestBuildMinimalReport(t *testing.T) {
	data, err := Build(&Request{URL: "https://example.com"}, fixedNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is not a PDF")
}

func TestBuildGeoOnlyReport(t *testing.T) {
	geoResult, err := geo.NewService("", "", false).Analyze(context.Background(), &geo.Request{
		Domain:   "acme.com",
		Keywords: []string{"seo"},
	})
	require.NoError(t, err)

	data, err := Build(&Request{
		URL:             "https://acme.com",
		GeoData:         geoResult,
		IncludeSections: []string{"geo"},
	}, fixedNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}

func TestBuildFullReport(t *testing.T) {
	ctx := context.Background()

	seoResult, err := seohealth.NewService(seohealth.NewSyntheticFetcher(1), true).
		Analyze(ctx, seohealth.Request{URL: "https://example.com"})
	require.NoError(t, err)

	searchResult, err := searchvis.NewService("", "", 1).
		Analyze(ctx, searchvis.Request{URL: "https://example.com"})
	require.NoError(t, err)

	geoResult, err := geo.NewService("", "", false).
		Analyze(ctx, &geo.Request{Domain: "example.com"})
	require.NoError(t, err)

	trafficResult, err := traffic.NewService(1).
		Estimate(ctx, &traffic.Request{URL: "https://example.com"})
	require.NoError(t, err)

	data, err := Build(&Request{
		URL:         "https://example.com",
		CompanyName: "Example Corp",
		SEOData:     seoResult,
		SearchData:  searchResult,
		GeoData:     geoResult,
		TrafficData: trafficResult,
	}, fixedNow)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestIncludeSectionsFilter(t *testing.T) {
	req := &Request{IncludeSections: []string{"seo", "traffic"}}
	assert.True(t, req.includes("seo"))
	assert.True(t, req.includes("traffic"))
	assert.False(t, req.includes("geo"))

	all := &Request{}
	for _, s := range []string{"seo", "search", "geo", "traffic"} {
		assert.True(t, all.includes(s))
	}
}

func TestStripEmoji(t *testing.T) {
	got := stripEmoji("🚨 Critical: fix this")
	assert.Equal(t, "Critical: fix this", got)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "1,234,567", formatThousands(1234567))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(1000))
}
