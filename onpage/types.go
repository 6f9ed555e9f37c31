package onpage

// Request describes one on-page analysis call.
type Request struct {
	URL string `json:"url" binding:"required"`
}

// Result is the complete on-page analysis of a single page.
type Result struct {
	URL             string        `json:"url"`
	Title           TitleCheck    `json:"title"`
	Meta            MetaCheck     `json:"meta"`
	Headings        HeadingCheck  `json:"headings"`
	Content         ContentCheck  `json:"content"`
	Delivery        DeliveryCheck `json:"delivery"`
	Links           LinkCheck     `json:"links"`
	Score           float64       `json:"score"`
	Recommendations []string      `json:"recommendations"`
}

type TitleCheck struct {
	Title    string `json:"title"`
	Length   int    `json:"length"`
	HasTitle bool   `json:"has_title"`
	Score    int    `json:"score"`
}

type MetaCheck struct {
	Description    string `json:"description"`
	DescriptionLen int    `json:"description_length"`
	HasDescription bool   `json:"has_description"`
	Keywords       string `json:"keywords"`
	HasKeywords    bool   `json:"has_keywords"`
	Robots         string `json:"robots"`
	Viewport       string `json:"viewport"`
	Score          int    `json:"score"`
}

type HeadingCheck struct {
	H1Count int      `json:"h1_count"`
	H2Count int      `json:"h2_count"`
	H3Count int      `json:"h3_count"`
	H1Text  []string `json:"h1_text"`
	Score   int      `json:"score"`
}

type ContentCheck struct {
	WordCount     int  `json:"word_count"`
	HasImages     bool `json:"has_images"`
	ImagesWithAlt int  `json:"images_with_alt"`
	TotalImages   int  `json:"total_images"`
	Score         int  `json:"score"`
}

// DeliveryCheck covers how the page was served: payload size, fetch time
// and the mobile viewport signal.
type DeliveryCheck struct {
	PageSize         int    `json:"page_size"`
	PageSizeSeverity string `json:"page_size_severity"`
	FetchTimeMS      int    `json:"fetch_time_ms"`
	FetchSeverity    string `json:"fetch_severity"`
	MobileOptimized  bool   `json:"mobile_optimized"`
	Score            int    `json:"score"`
}

type LinkCheck struct {
	InternalLinks int `json:"internal_links"`
	ExternalLinks int `json:"external_links"`
	Score         int `json:"score"`
}
