package seohealth

import "testing"

func TestCategorizeVital(t *testing.T) {
	tests := []struct {
		metric string
		value  float64
		want   string
	}{
		{"lcp", 2.4, "good"},
		{"lcp", 2.5, "good"},
		{"lcp", 3.0, "needs_improvement"},
		{"lcp", 4.0, "needs_improvement"},
		{"lcp", 5.0, "poor"},
		{"fid", 100, "good"},
		{"fid", 250, "needs_improvement"},
		{"fid", 350, "poor"},
		{"cls", 0.05, "good"},
		{"cls", 0.2, "needs_improvement"},
		{"cls", 0.3, "poor"},
		{"ttfb", 0.7, "good"},
		{"ttfb", 1.0, "needs_improvement"},
		{"ttfb", 2.0, "poor"},
		{"nope", 1.0, "unknown"},
	}
	for _, tt := range tests {
		if got := CategorizeVital(tt.value, tt.metric); got != tt.want {
			t.Errorf("CategorizeVital(%v, %q) = %q, want %q", tt.value, tt.metric, got, tt.want)
		}
	}
}

func TestSortOpportunities(t *testing.T) {
	opps := []Opportunity{
		{Title: "a", Score: floatPtr(0.8)},
		{Title: "b", Score: floatPtr(0.3)},
		{Title: "c", Score: nil},
		{Title: "d", Score: floatPtr(0.5)},
	}
	sortOpportunities(opps)

	wantOrder := []string{"b", "d", "a", "c"}
	for i, want := range wantOrder {
		if opps[i].Title != want {
			t.Fatalf("position %d = %q, want %q", i, opps[i].Title, want)
		}
	}
}

func TestExtractOpportunitiesFiltersAndPrioritizes(t *testing.T) {
	lh := &lighthouseResult{
		Audits: map[string]auditResult{
			"render-blocking-resources": {Title: "Eliminate render-blocking resources", Score: floatPtr(0.42), DisplayValue: "Potential savings of 300 ms"},
			"uses-responsive-images":    {Title: "Properly size images", Score: floatPtr(0.65)},
			"unused-css-rules":          {Title: "Reduce unused CSS", Score: floatPtr(1.0)},
			"not-an-opportunity":        {Title: "Other", Score: floatPtr(0.1)},
		},
	}

	opps := extractOpportunities(lh)
	if len(opps) != 2 {
		t.Fatalf("got %d opportunities, want 2", len(opps))
	}
	if opps[0].Title != "Eliminate render-blocking resources" {
		t.Errorf("worst-first ordering broken, got %q first", opps[0].Title)
	}
	if opps[0].Priority != "high" {
		t.Errorf("score 0.42 priority = %q, want high", opps[0].Priority)
	}
	if opps[1].Priority != "medium" {
		t.Errorf("score 0.65 priority = %q, want medium", opps[1].Priority)
	}
}

func TestExtractDiagnosticsIncludesScreenshotAudits(t *testing.T) {
	lh := &lighthouseResult{
		Audits: map[string]auditResult{
			"dom-size":              {Title: "Avoid an excessive DOM size", DisplayValue: "312 elements"},
			"screenshot-thumbnails": {Title: "Screenshot Thumbnails"},
			"final-screenshot":      {Title: "Final Screenshot"},
			"script-treemap-data":   {Title: "Script Treemap Data"},
			"unknown-audit":         {Title: "Ignored"},
		},
	}

	diags := extractDiagnostics(lh)
	if len(diags) != 4 {
		t.Fatalf("got %d diagnostics, want 4", len(diags))
	}
	got := map[string]bool{}
	for _, d := range diags {
		got[d.ID] = true
	}
	for _, id := range []string{"screenshot-thumbnails", "final-screenshot", "script-treemap-data"} {
		if !got[id] {
			t.Errorf("diagnostic %q missing", id)
		}
	}
	if got["unknown-audit"] {
		t.Error("unknown-audit should not be collected")
	}
}

func TestExtractVitalsConvertsUnits(t *testing.T) {
	lh := &lighthouseResult{
		Audits: map[string]auditResult{
			"largest-contentful-paint": {NumericValue: floatPtr(2400)},
			"cumulative-layout-shift":  {NumericValue: floatPtr(0.12)},
			"server-response-time":     {NumericValue: floatPtr(600)},
		},
	}

	cwv := extractVitals(lh)
	if cwv.LCP == nil || *cwv.LCP != 2.4 {
		t.Fatalf("LCP = %v, want 2.4", cwv.LCP)
	}
	if cwv.LCPCategory == nil || *cwv.LCPCategory != "good" {
		t.Errorf("LCP category = %v, want good", cwv.LCPCategory)
	}
	if cwv.CLS == nil || *cwv.CLS != 0.12 {
		t.Errorf("CLS = %v, want 0.12", cwv.CLS)
	}
	if cwv.CLSCategory == nil || *cwv.CLSCategory != "needs_improvement" {
		t.Errorf("CLS category = %v, want needs_improvement", cwv.CLSCategory)
	}
	if cwv.TTFB == nil || *cwv.TTFB != 0.6 {
		t.Errorf("TTFB = %v, want 0.6", cwv.TTFB)
	}
	if cwv.FID != nil {
		t.Errorf("FID should be nil without total-blocking-time, got %v", *cwv.FID)
	}
}

func TestCategoryScoreRounds(t *testing.T) {
	lh := &lighthouseResult{
		Categories: map[string]categoryResult{
			"performance": {Score: floatPtr(0.87)},
		},
	}
	got := categoryScore(lh, "performance")
	if got == nil || *got != 87 {
		t.Fatalf("categoryScore = %v, want 87", got)
	}
	if categoryScore(lh, "seo") != nil {
		t.Error("missing category should return nil")
	}
}
