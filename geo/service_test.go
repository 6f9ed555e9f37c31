package geo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoService(debug bool) *Service {
	// No credentials, so both assistants answer with simulated text.
	return NewService("", "", debug)
}

func TestAnalyzeRequiresDomain(t *testing.T) {
	_, err := newDemoService(false).Analyze(context.Background(), &Request{Domain: "  "})
	assert.Error(t, err)
}

func TestAnalyzeCleansDomain(t *testing.T) {
	result, err := newDemoService(false).Analyze(context.Background(), &Request{Domain: "https://www.Acme.com/"})
	require.NoError(t, err)
	assert.Equal(t, "acme.com", result.Domain)
}

func TestAnalyzeProbeCount(t *testing.T) {
	// 2 brand queries plus 2 per keyword (first three keywords only),
	// each asked on both platforms.
	result, err := newDemoService(false).Analyze(context.Background(), &Request{
		Domain:   "acme.com",
		Keywords: []string{"seo", "marketing", "analytics", "ignored"},
	})
	require.NoError(t, err)

	assert.Len(t, result.Mentions, 16)
	assert.Equal(t, 16, result.Summary.TotalChecks)
}

func TestAnalyzeSimulatedMentionsAreFound(t *testing.T) {
	result, err := newDemoService(false).Analyze(context.Background(), &Request{Domain: "acme.com"})
	require.NoError(t, err)

	// Only the "What is acme.com?" probe names the domain in simulated
	// replies, on both platforms.
	assert.Equal(t, 4, result.Summary.TotalChecks)
	assert.Equal(t, 2, result.Summary.MentionsFound)
	assert.InDelta(t, 0.5, result.Summary.MentionRate, 0.001)
	require.NotNil(t, result.Summary.AverageRank)

	for _, m := range result.Mentions {
		if !m.Mentioned {
			assert.Nil(t, m.Sentiment)
			continue
		}
		require.NotNil(t, m.Sentiment)
		assert.Contains(t, []string{"positive", "neutral", "negative"}, *m.Sentiment)
		require.NotNil(t, m.Context)
		require.NotNil(t, m.Rank)
	}
}

func TestAnalyzeSentimentBreakdownSums(t *testing.T) {
	result, err := newDemoService(false).Analyze(context.Background(), &Request{Domain: "acme.com"})
	require.NoError(t, err)

	total := 0
	for _, n := range result.Summary.SentimentBreakdown {
		total += n
	}
	assert.Equal(t, result.Summary.MentionsFound, total)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeRawResponsesOnlyInDebug(t *testing.T) {
	quiet, err := newDemoService(false).Analyze(context.Background(), &Request{Domain: "acme.com"})
	require.NoError(t, err)
	assert.Nil(t, quiet.RawResponses)

	verbose, err := newDemoService(true).Analyze(context.Background(), &Request{Domain: "acme.com"})
	require.NoError(t, err)
	require.NotNil(t, verbose.RawResponses)
	assert.Contains(t, verbose.RawResponses, "gemini")
	assert.Contains(t, verbose.RawResponses, "chatgpt")
}

func TestCheckCompetitorsToggle(t *testing.T) {
	off := false
	result, err := newDemoService(false).Analyze(context.Background(), &Request{
		Domain:           "acme.com",
		CheckCompetitors: &off,
	})
	require.NoError(t, err)

	for _, m := range result.Mentions {
		assert.Nil(t, m.CompetitorsMentioned)
	}
}

func TestSummarizeSkipsZeroRank(t *testing.T) {
	rank := func(v int) *int { return &v }
	mentions := []BrandMention{
		{Mentioned: true, Rank: rank(0)},
		{Mentioned: true, Rank: rank(2)},
		{Mentioned: true, Rank: rank(4)},
	}

	summary := summarize(mentions)
	require.NotNil(t, summary.AverageRank)
	assert.Equal(t, 3.0, *summary.AverageRank)

	zeroOnly := summarize([]BrandMention{{Mentioned: true, Rank: rank(0)}})
	assert.Nil(t, zeroOnly.AverageRank)
}

func TestSimulatedResponseBranches(t *testing.T) {
	whatIs := simulatedResponse("What is acme.com?")
	assert.Contains(t, whatIs, "acme.com")
	assert.Contains(t, whatIs, "competitors")

	best := simulatedResponse("What are the best tools for seo?")
	assert.Contains(t, best, "Highly recommended")
	assert.Contains(t, best, "seo")

	generic := simulatedResponse("Compare top seo platforms")
	assert.Contains(t, generic, "significant player")
}
