package traffic

// Request controls which estimate sections are produced. The include flags
// default to true when absent from the request body.
type Request struct {
	URL              string `json:"url" binding:"required"`
	IncludeSources   *bool  `json:"include_sources"`
	IncludeCountries *bool  `json:"include_countries"`
	IncludeKeywords  *bool  `json:"include_keywords"`
}

type Source struct {
	Source          string  `json:"source"`
	Percentage      float64 `json:"percentage"`
	EstimatedVisits int     `json:"estimated_visits"`
}

type Country struct {
	Country         string  `json:"country"`
	CountryCode     string  `json:"country_code"`
	Percentage      float64 `json:"percentage"`
	EstimatedVisits int     `json:"estimated_visits"`
}

type Keyword struct {
	Keyword  string   `json:"keyword"`
	Position *int     `json:"position"`
	Volume   *int     `json:"volume"`
	CPC      *float64 `json:"cpc"`
}

type Metrics struct {
	MonthlyVisits    int      `json:"monthly_visits"`
	MonthlyVisitsMin int      `json:"monthly_visits_min"`
	MonthlyVisitsMax int      `json:"monthly_visits_max"`
	AvgVisitDuration *string  `json:"avg_visit_duration"`
	PagesPerVisit    *float64 `json:"pages_per_visit"`
	BounceRate       *float64 `json:"bounce_rate"`
}

type Result struct {
	URL             string    `json:"url"`
	Disclaimer      string    `json:"disclaimer"`
	Metrics         Metrics   `json:"metrics"`
	TrafficSources  []Source  `json:"traffic_sources"`
	TopCountries    []Country `json:"top_countries"`
	TopKeywords     []Keyword `json:"top_keywords"`
	GrowthTrend     string    `json:"growth_trend"`
	ConfidenceLevel string    `json:"confidence_level"`
	Recommendations []string  `json:"recommendations"`
}
