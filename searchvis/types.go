package searchvis

// Request describes one search visibility analysis call. Credentials are
// optional; absent credentials select the synthetic provider payloads.
type Request struct {
	URL         string `json:"url" binding:"required"`
	AccessToken string `json:"access_token"`
	BingAPIKey  string `json:"bing_api_key"`
}

// IndexStatus aggregates page indexing counts across providers.
type IndexStatus struct {
	TotalPages      int  `json:"total_pages"`
	IndexedPages    int  `json:"indexed_pages"`
	NotIndexedPages int  `json:"not_indexed_pages"`
	PendingPages    *int `json:"pending_pages"`
	Errors          *int `json:"errors"`
	Warnings        *int `json:"warnings"`
}

// SearchPerformance is one query-level performance row.
type SearchPerformance struct {
	Query       string  `json:"query"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	CTR         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

// SitemapStatus describes one submitted sitemap.
type SitemapStatus struct {
	Path            string  `json:"path"`
	LastSubmitted   *string `json:"last_submitted"`
	LastDownloaded  *string `json:"last_downloaded"`
	Warnings        int     `json:"warnings"`
	Errors          int     `json:"errors"`
	IsPending       bool    `json:"is_pending"`
	IsSitemapsIndex bool    `json:"is_sitemaps_index"`
}

// ProviderCounts is the index-status block of one provider payload.
type ProviderCounts struct {
	TotalPages      int  `json:"total_pages"`
	IndexedPages    int  `json:"indexed_pages"`
	NotIndexedPages int  `json:"not_indexed_pages"`
	PendingPages    *int `json:"pending_pages,omitempty"`
	Errors          *int `json:"errors,omitempty"`
	Warnings        *int `json:"warnings,omitempty"`
}

// ProviderTotals is the aggregate performance block of one provider payload.
type ProviderTotals struct {
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	CTR         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

// ProviderData is the normalized payload from one indexing provider. Live
// call failures are downgraded to a synthetic payload with a note, never
// surfaced as errors.
type ProviderData struct {
	SiteURL           string          `json:"site_url"`
	Status            string          `json:"status"`
	IndexStatus       *ProviderCounts `json:"index_status,omitempty"`
	SearchPerformance *ProviderTotals `json:"search_performance,omitempty"`
	Error             string          `json:"error,omitempty"`
	Note              string          `json:"note,omitempty"`
}

// Result is the normalized search visibility analysis for one URL.
type Result struct {
	URL               string              `json:"url"`
	GoogleData        *ProviderData       `json:"google_data"`
	BingData          *ProviderData       `json:"bing_data"`
	IndexStatus       *IndexStatus        `json:"index_status"`
	SearchPerformance []SearchPerformance `json:"search_performance"`
	Sitemaps          []SitemapStatus     `json:"sitemaps"`
	Recommendations   []string            `json:"recommendations"`
}
