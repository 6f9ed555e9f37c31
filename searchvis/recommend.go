package searchvis

import "fmt"

// recommend runs the advisory rule table over a normalized result. Every
// matching rule fires. hasCredentials reports whether at least one provider
// credential was supplied; without any, the data is simulated and the
// connect-accounts advice fires.
func recommend(r *Result, hasCredentials bool) []string {
	var recommendations []string

	if r.IndexStatus != nil {
		total := r.IndexStatus.TotalPages
		if total < 1 {
			total = 1
		}
		indexedRatio := float64(r.IndexStatus.IndexedPages) / float64(total)

		if indexedRatio < 0.8 {
			recommendations = append(recommendations, fmt.Sprintf(
				"📉 Only %.1f%% of your pages are indexed. Submit a sitemap to Google Search Console and check for crawl errors.",
				indexedRatio*100))
		}
		if r.IndexStatus.Errors != nil && *r.IndexStatus.Errors > 0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"🚨 Found %d indexing errors. Fix these in Google Search Console to improve visibility.",
				*r.IndexStatus.Errors))
		}
		if r.IndexStatus.Warnings != nil && *r.IndexStatus.Warnings > 0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"⚠️ Found %d indexing warnings. Review and address these to ensure proper indexing.",
				*r.IndexStatus.Warnings))
		}
	}

	if len(r.SearchPerformance) > 0 {
		totalClicks, totalImpressions := 0, 0
		sumPosition := 0.0
		for _, p := range r.SearchPerformance {
			totalClicks += p.Clicks
			totalImpressions += p.Impressions
			sumPosition += p.Position
		}
		if totalImpressions < 1 {
			totalImpressions = 1
		}
		avgCTR := float64(totalClicks) / float64(totalImpressions) * 100
		avgPosition := sumPosition / float64(len(r.SearchPerformance))

		if avgCTR < 2 {
			recommendations = append(recommendations, fmt.Sprintf(
				"📊 Your average CTR is %.2f%%. Improve meta titles and descriptions to increase click-through rates.",
				avgCTR))
		}
		if avgPosition > 10 {
			recommendations = append(recommendations, fmt.Sprintf(
				"🎯 Average position is %.1f. Focus on SEO improvements to reach the first page (position 1-10).",
				avgPosition))
		}
	}

	if len(r.Sitemaps) == 0 {
		recommendations = append(recommendations,
			"🗺️ No sitemaps detected. Create and submit XML sitemaps to Google and Bing for better indexing.")
	}

	if !hasCredentials {
		recommendations = append(recommendations,
			"🔗 Connect your Google Search Console and Bing Webmaster Tools accounts for detailed insights.")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"✅ Your search visibility looks good! Continue monitoring and optimizing.")
	}

	return recommendations
}
