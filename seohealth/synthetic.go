package seohealth

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// SyntheticFetcher generates a schema-valid Lighthouse-shaped payload when
// no PageSpeed API key is configured. It never fails, and its output runs
// through the same normalization as a live payload.
type SyntheticFetcher struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticFetcher creates a generator seeded from the given value so
// tests can fix the output.
func NewSyntheticFetcher(seed int64) *SyntheticFetcher {
	return &SyntheticFetcher{rng: rand.New(rand.NewSource(seed))}
}

func (f *SyntheticFetcher) Fetch(_ context.Context, _, _ string) (*pagespeedResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.rng

	scorePtr := func(lo, hi int) *float64 {
		v := float64(lo+r.Intn(hi-lo+1)) / 100
		return &v
	}
	numPtr := func(lo, hi float64) *float64 {
		v := lo + r.Float64()*(hi-lo)
		return &v
	}

	audits := map[string]auditResult{
		"largest-contentful-paint": {NumericValue: numPtr(1500, 3500)},
		"total-blocking-time":      {NumericValue: numPtr(100, 1500)},
		"cumulative-layout-shift":  {NumericValue: numPtr(0.01, 0.25)},
		"first-contentful-paint":   {NumericValue: numPtr(1000, 2500)},
		"server-response-time":     {NumericValue: numPtr(400, 1200)},
		"render-blocking-resources": {
			Title:        "Eliminate render-blocking resources",
			Description:  "Resources are blocking the first paint of your page.",
			Score:        floatPtr(0.42),
			DisplayValue: "Potential savings of 1.2 s",
		},
		"uses-responsive-images": {
			Title:        "Properly size images",
			Description:  "Serve images that are appropriately-sized to save cellular data.",
			Score:        floatPtr(0.65),
			DisplayValue: "Potential savings of 0.8 s",
		},
	}

	return &pagespeedResponse{
		LighthouseResult: lighthouseResult{
			LighthouseVersion: "11.0.0",
			FetchTime:         time.Now().UTC().Format(time.RFC3339),
			Categories: map[string]categoryResult{
				"performance":    {Score: scorePtr(60, 95)},
				"seo":            {Score: scorePtr(70, 95)},
				"accessibility":  {Score: scorePtr(65, 90)},
				"best-practices": {Score: scorePtr(75, 98)},
			},
			Audits: audits,
		},
	}, nil
}

func floatPtr(v float64) *float64 { return &v }
