package traffic

import "fmt"

func recommend(r *Result) []string {
	var recs []string

	switch {
	case r.Metrics.MonthlyVisits < 50000:
		recs = append(recs,
			"📈 Low traffic detected. Focus on content marketing and SEO to increase organic visibility.",
			"🎯 Consider starting a blog with valuable content related to your industry.",
		)
	case r.Metrics.MonthlyVisits < 200000:
		recs = append(recs, "📊 Moderate traffic level. Optimize conversion rates and expand your keyword targeting.")
	default:
		recs = append(recs, "🌟 Strong traffic volume! Focus on retention and maximizing conversion rates.")
	}

	if pct, ok := sourceShare(r.TrafficSources, "Organic Search"); ok && pct < 40 {
		recs = append(recs, fmt.Sprintf("🔍 Organic search is only %v%% of traffic. Invest in SEO to improve organic visibility.", pct))
	}
	if pct, ok := sourceShare(r.TrafficSources, "Direct"); ok && pct < 20 {
		recs = append(recs, fmt.Sprintf("👋 Direct traffic is %v%%. Build brand awareness to increase direct visits.", pct))
	}
	if pct, ok := sourceShare(r.TrafficSources, "Social Media"); ok && pct < 5 {
		recs = append(recs, "📱 Low social media traffic. Develop a social media strategy to drive more visits.")
	}

	if r.Metrics.BounceRate != nil && *r.Metrics.BounceRate > 0.6 {
		recs = append(recs, fmt.Sprintf("⚠️ High bounce rate (%.0f%%). Improve page load speed and content relevance.", *r.Metrics.BounceRate*100))
	}
	if r.Metrics.PagesPerVisit != nil && *r.Metrics.PagesPerVisit < 2 {
		recs = append(recs, "📝 Low pages per visit. Improve internal linking and add related content suggestions.")
	}

	recs = append(recs,
		"🎯 Focus on high-volume, low-competition keywords for quick wins.",
		"📧 Implement email marketing to increase returning visitors.",
		"🔗 Build quality backlinks to improve domain authority and organic traffic.",
		"📱 Ensure mobile optimization as mobile traffic continues to grow.",
	)

	return recs
}

func sourceShare(sources []Source, name string) (float64, bool) {
	for _, s := range sources {
		if s.Source == name {
			return s.Percentage, true
		}
	}
	return 0, false
}
