package geo

import (
	"fmt"
	"strings"
)

func recommend(r *Result) []string {
	var recs []string
	summary := r.Summary

	switch {
	case summary.MentionRate < 0.3:
		recs = append(recs, fmt.Sprintf(
			"🚨 Low AI visibility: Your brand is only mentioned in %.0f%% of queries. "+
				"Increase content marketing and PR efforts to improve brand recognition.",
			summary.MentionRate*100))
	case summary.MentionRate < 0.7:
		recs = append(recs, fmt.Sprintf(
			"⚠️ Moderate AI visibility: %.0f%% mention rate. "+
				"Continue building authority through quality content and backlinks.",
			summary.MentionRate*100))
	default:
		recs = append(recs, fmt.Sprintf(
			"✅ Strong AI visibility: %.0f%% mention rate. "+
				"Maintain your content strategy to preserve this advantage.",
			summary.MentionRate*100))
	}

	totalSentiment := 0
	for _, n := range summary.SentimentBreakdown {
		totalSentiment += n
	}
	if totalSentiment > 0 {
		positiveRatio := float64(summary.SentimentBreakdown["positive"]) / float64(totalSentiment)
		negativeRatio := float64(summary.SentimentBreakdown["negative"]) / float64(totalSentiment)

		if positiveRatio < 0.5 {
			recs = append(recs, "📉 Low positive sentiment detected. Focus on improving customer experience and gathering positive reviews.")
		}
		if negativeRatio > 0.2 {
			recs = append(recs, "⚠️ Negative sentiment detected. Address customer concerns and improve your online reputation.")
		}
	}

	if summary.AverageRank != nil && *summary.AverageRank > 3 {
		recs = append(recs, fmt.Sprintf(
			"📊 Average ranking position is %.1f. "+
				"Work on becoming a top-3 mentioned brand in your category.",
			*summary.AverageRank))
	}

	if len(r.Keywords) > 0 {
		recs = append(recs, fmt.Sprintf(
			"🎯 Target keywords analyzed: %s. "+
				"Create comprehensive content around these topics to increase AI mentions.",
			strings.Join(r.Keywords, ", ")))
	}

	recs = append(recs,
		"📝 Create authoritative, well-structured content that AI models can easily reference.",
		"🔗 Build high-quality backlinks from reputable sources to increase training data presence.",
		"📱 Maintain active presence on platforms likely to be in training data (Wikipedia, Reddit, Quora).",
		"⭐ Encourage and manage online reviews to influence sentiment in AI responses.",
		"🏆 Aim to be featured in 'best of' lists and comparison articles.",
	)

	return recs
}
