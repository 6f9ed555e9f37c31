package seohealth

import (
	"math"
	"sort"
)

// vitalThresholds holds the published good/needs-improvement boundaries for
// each Core Web Vital. Values at or below goodMax are "good", at or below
// needsImprovementMax are "needs_improvement", anything above is "poor".
var vitalThresholds = map[string]struct {
	goodMax             float64
	needsImprovementMax float64
}{
	"lcp":  {2.5, 4.0},
	"fid":  {100, 300},
	"cls":  {0.1, 0.25},
	"fcp":  {1.8, 3.0},
	"ttfb": {0.8, 1.8},
}

// opportunityAudits is the fixed allow-list of Lighthouse audit identifiers
// scanned for optimization opportunities.
var opportunityAudits = []string{
	"render-blocking-resources",
	"unused-css-rules",
	"unused-javascript",
	"modern-image-formats",
	"efficiently-encode-images",
	"offscreen-images",
	"minify-css",
	"minify-javascript",
	"remove-unused-css",
	"remove-unused-javascript",
	"uses-optimized-images",
	"uses-text-compression",
	"uses-responsive-images",
	"prioritize-lcp-image",
	"font-display",
}

var diagnosticAudits = []string{
	"mainthread-work-breakdown",
	"bootup-time",
	"uses-long-cache-ttl",
	"total-byte-weight",
	"dom-size",
	"network-requests",
	"network-rtt",
	"network-server-latency",
	"main-thread-tasks",
	"diagnostics",
	"metrics",
	"screenshot-thumbnails",
	"final-screenshot",
	"script-treemap-data",
}

// CategorizeVital classifies a Core Web Vital value against that metric's
// thresholds. Unknown metrics return "unknown".
func CategorizeVital(value float64, metric string) string {
	t, ok := vitalThresholds[metric]
	if !ok {
		return "unknown"
	}
	switch {
	case value <= t.goodMax:
		return "good"
	case value <= t.needsImprovementMax:
		return "needs_improvement"
	default:
		return "poor"
	}
}

func extractVitals(lh *lighthouseResult) CoreWebVitals {
	var cwv CoreWebVitals

	set := func(metric string, value *float64, target **float64, category **string) {
		if value == nil {
			return
		}
		rounded := round3(*value)
		cat := CategorizeVital(*value, metric)
		*target = &rounded
		*category = &cat
	}

	if a, ok := lh.Audits["largest-contentful-paint"]; ok && a.NumericValue != nil {
		v := *a.NumericValue / 1000
		set("lcp", &v, &cwv.LCP, &cwv.LCPCategory)
	}
	// FID is estimated from Total Blocking Time; Lighthouse dropped the
	// native FID audit.
	if a, ok := lh.Audits["total-blocking-time"]; ok && a.NumericValue != nil {
		v := *a.NumericValue / 1000 * 0.1
		set("fid", &v, &cwv.FID, &cwv.FIDCategory)
	}
	if a, ok := lh.Audits["cumulative-layout-shift"]; ok && a.NumericValue != nil {
		v := *a.NumericValue
		set("cls", &v, &cwv.CLS, &cwv.CLSCategory)
	}
	if a, ok := lh.Audits["first-contentful-paint"]; ok && a.NumericValue != nil {
		v := *a.NumericValue / 1000
		set("fcp", &v, &cwv.FCP, &cwv.FCPCategory)
	}
	if a, ok := lh.Audits["server-response-time"]; ok && a.NumericValue != nil {
		v := *a.NumericValue / 1000
		set("ttfb", &v, &cwv.TTFB, &cwv.TTFBCategory)
	}

	return cwv
}

func extractOpportunities(lh *lighthouseResult) []Opportunity {
	var opportunities []Opportunity

	for _, auditID := range opportunityAudits {
		audit, ok := lh.Audits[auditID]
		if !ok || audit.Score == nil || *audit.Score >= 1 {
			continue
		}

		title := audit.Title
		if title == "" {
			title = auditID
		}
		priority := "medium"
		if *audit.Score < 0.5 {
			priority = "high"
		}

		opportunities = append(opportunities, Opportunity{
			Title:       title,
			Description: audit.Description,
			Score:       audit.Score,
			Savings:     audit.DisplayValue,
			Priority:    priority,
		})
	}

	sortOpportunities(opportunities)
	return opportunities
}

// sortOpportunities orders opportunities worst-first by audit score;
// an absent score is treated as 1 and lands last.
func sortOpportunities(opportunities []Opportunity) {
	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunityScore(opportunities[i]) < opportunityScore(opportunities[j])
	})
}

func opportunityScore(o Opportunity) float64 {
	if o.Score == nil {
		return 1
	}
	return *o.Score
}

func extractDiagnostics(lh *lighthouseResult) []Diagnostic {
	diagnostics := []Diagnostic{}
	for _, auditID := range diagnosticAudits {
		audit, ok := lh.Audits[auditID]
		if !ok {
			continue
		}
		diagnostics = append(diagnostics, Diagnostic{
			ID:          auditID,
			Title:       audit.Title,
			Description: audit.Description,
			Value:       audit.DisplayValue,
			Score:       audit.Score,
			Details:     audit.Details,
		})
	}
	return diagnostics
}

func categoryScore(lh *lighthouseResult, name string) *int {
	cat, ok := lh.Categories[name]
	if !ok || cat.Score == nil {
		return nil
	}
	v := int(math.Round(*cat.Score * 100))
	return &v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
