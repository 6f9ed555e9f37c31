package report

import (
	"github.com/seo-audit-tool/backend/geo"
	"github.com/seo-audit-tool/backend/searchvis"
	"github.com/seo-audit-tool/backend/seohealth"
	"github.com/seo-audit-tool/backend/traffic"
)

// Request carries the audit results to assemble into a PDF. Sections with
// nil data are skipped even when listed in IncludeSections.
type Request struct {
	URL             string            `json:"url" binding:"required"`
	SEOData         *seohealth.Result `json:"seo_data"`
	SearchData      *searchvis.Result `json:"search_data"`
	GeoData         *geo.Result       `json:"geo_data"`
	TrafficData     *traffic.Result   `json:"traffic_data"`
	IncludeSections []string          `json:"include_sections"`
	CompanyName     string            `json:"company_name"`
}

func (r *Request) includes(section string) bool {
	sections := r.IncludeSections
	if len(sections) == 0 {
		sections = []string{"seo", "search", "geo", "traffic"}
	}
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

// TemplateSection describes one section of the report layout, returned by
// the template endpoint so clients can render a section picker.
type TemplateSection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var TemplateSections = []TemplateSection{
	{ID: "executive_summary", Title: "Executive Summary", Description: "Overview of all audit findings"},
	{ID: "seo_health", Title: "SEO Health Analysis", Description: "Technical and on-page SEO factors"},
	{ID: "search_visibility", Title: "Search Visibility", Description: "Google and Bing indexing status"},
	{ID: "geo", Title: "Generative Engine Optimization", Description: "AI chatbot visibility analysis"},
	{ID: "traffic", Title: "Traffic Estimation", Description: "Estimated website traffic overview"},
}
