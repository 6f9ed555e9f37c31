package geo

// Request describes one GEO analysis call. Only the first 3 keywords are
// used for query construction; CheckCompetitors defaults to true.
type Request struct {
	Domain           string   `json:"domain" binding:"required"`
	Keywords         []string `json:"keywords"`
	CheckCompetitors *bool    `json:"check_competitors"`
}

// BrandMention is one probe outcome for a (platform, query) pair. Created
// once per probe and never mutated afterwards.
type BrandMention struct {
	Platform             string   `json:"platform"`
	Query                string   `json:"query"`
	Mentioned            bool     `json:"mentioned"`
	Context              *string  `json:"context"`
	Sentiment            *string  `json:"sentiment"`
	Rank                 *int     `json:"rank"`
	CompetitorsMentioned []string `json:"competitors_mentioned"`
}

// Summary aggregates the probe outcomes.
type Summary struct {
	TotalChecks        int            `json:"total_checks"`
	MentionsFound      int            `json:"mentions_found"`
	MentionRate        float64        `json:"mention_rate"`
	SentimentBreakdown map[string]int `json:"sentiment_breakdown"`
	AverageRank        *float64       `json:"average_rank"`
}

// Result is the full GEO analysis for one domain.
type Result struct {
	Domain          string                       `json:"domain"`
	Keywords        []string                     `json:"keywords"`
	Mentions        []BrandMention               `json:"mentions"`
	Summary         Summary                      `json:"summary"`
	Recommendations []string                     `json:"recommendations"`
	RawResponses    map[string]map[string]string `json:"raw_responses,omitempty"`
}
