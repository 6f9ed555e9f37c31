package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword lists for the sentiment heuristic. Sentiment results are
// comparable across runs only while these stay fixed, so do not tune them.
var (
	positiveWords = []string{"best", "excellent", "great", "amazing", "top", "leading", "recommended", "popular", "trusted"}
	negativeWords = []string{"worst", "bad", "poor", "terrible", "avoid", "issues", "problems", "scam", "unreliable"}
)

var (
	rankPrefixRe = regexp.MustCompile(`^\s*(\d+)\s*[.\-)]\s*`)

	competitorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:competitors?|alternatives?|similar|like|vs|versus)\s+(?:include|are|:)\s+([^.]+)`),
		regexp.MustCompile(`(?:other|top)\s+(?:popular\s+)?(?:options?|tools?|platforms?)\s+(?:include|:)\s+([^.]+)`),
	}

	competitorSplitRe = regexp.MustCompile(`,|\band\b|\bor\b`)
)

// Mentioned reports whether brand occurs in text, case-insensitively.
func Mentioned(text, brand string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(brand))
}

// MentionContext returns the first 500 characters of the response text.
func MentionContext(text string) string {
	runes := []rune(text)
	if len(runes) > 500 {
		return string(runes[:500])
	}
	return text
}

// ExtractSentiment classifies the tone around the first brand mention by
// counting fixed positive and negative keywords in a ±100-character window.
// More positive hits wins "positive", more negative wins "negative"; a tie
// (including zero hits of both) is "neutral".
func ExtractSentiment(text, brand string) string {
	textLower := strings.ToLower(text)
	brandLower := strings.ToLower(brand)

	brandPos := strings.Index(textLower, brandLower)
	if brandPos == -1 {
		return "neutral"
	}

	start := brandPos - 100
	if start < 0 {
		start = 0
	}
	end := brandPos + len(brandLower) + 100
	if end > len(textLower) {
		end = len(textLower)
	}
	window := textLower[start:end]

	posCount, negCount := 0, 0
	for _, word := range positiveWords {
		if strings.Contains(window, word) {
			posCount++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(window, word) {
			negCount++
		}
	}

	switch {
	case posCount > negCount:
		return "positive"
	case negCount > posCount:
		return "negative"
	default:
		return "neutral"
	}
}

// ExtractRank finds the brand's position in list-style response text. The
// first line containing the brand wins: a leading "<number>." / "-" / ")"
// prefix supplies the rank, otherwise the 1-based line index is used.
// Returns nil when the brand appears in no line.
func ExtractRank(text, brand string) *int {
	brandLower := strings.ToLower(brand)
	for i, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToLower(line), brandLower) {
			continue
		}
		if m := rankPrefixRe.FindStringSubmatch(line); m != nil {
			if rank, err := strconv.Atoi(m[1]); err == nil {
				return &rank
			}
		}
		rank := i + 1
		return &rank
	}
	return nil
}

// ExtractCompetitors pulls competitor names out of phrases like
// "competitors include A, B and C". Tokens containing the brand or shorter
// than 3 characters are discarded; results are deduplicated and capped at 5.
func ExtractCompetitors(text, brand string) []string {
	textLower := strings.ToLower(text)
	brandLower := strings.ToLower(brand)

	competitors := []string{}
	seen := make(map[string]bool)

	for _, pattern := range competitorPatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			for _, item := range competitorSplitRe.Split(match[1], -1) {
				item = strings.TrimSpace(item)
				if item == "" || len(item) <= 2 || strings.Contains(item, brandLower) {
					continue
				}
				if seen[item] {
					continue
				}
				seen[item] = true
				competitors = append(competitors, item)
			}
		}
	}

	if len(competitors) > 5 {
		competitors = competitors[:5]
	}
	return competitors
}
