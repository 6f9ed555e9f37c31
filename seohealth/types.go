package seohealth

// Request describes one SEO health analysis call.
type Request struct {
	URL      string `json:"url" binding:"required"`
	Strategy string `json:"strategy"`
}

// CoreWebVitals holds the normalized browser timing metrics. Values are
// absent (nil) when the source payload did not supply them; each category
// is derived from the published good/needs-improvement thresholds.
type CoreWebVitals struct {
	LCP          *float64 `json:"lcp"`
	LCPCategory  *string  `json:"lcp_category"`
	FID          *float64 `json:"fid"`
	FIDCategory  *string  `json:"fid_category"`
	CLS          *float64 `json:"cls"`
	CLSCategory  *string  `json:"cls_category"`
	FCP          *float64 `json:"fcp"`
	FCPCategory  *string  `json:"fcp_category"`
	TTFB         *float64 `json:"ttfb"`
	TTFBCategory *string  `json:"ttfb_category"`
}

// Opportunity is one optimization opportunity extracted from the audit.
type Opportunity struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Score       *float64 `json:"score"`
	Savings     string   `json:"savings"`
	Priority    string   `json:"priority"`
}

// Diagnostic is one informational audit record passed through unchanged.
type Diagnostic struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Value       string                 `json:"value"`
	Score       *float64               `json:"score"`
	Details     map[string]interface{} `json:"details"`
}

// Result is the normalized SEO health analysis for one URL.
type Result struct {
	URL                string                 `json:"url"`
	Strategy           string                 `json:"strategy"`
	PerformanceScore   *int                   `json:"performance_score"`
	SEOScore           *int                   `json:"seo_score"`
	AccessibilityScore *int                   `json:"accessibility_score"`
	BestPracticesScore *int                   `json:"best_practices_score"`
	CoreWebVitals      CoreWebVitals          `json:"core_web_vitals"`
	Opportunities      []Opportunity          `json:"opportunities"`
	Diagnostics        []Diagnostic           `json:"diagnostics"`
	Metadata           map[string]interface{} `json:"metadata"`
	Recommendations    []string               `json:"recommendations"`
}
