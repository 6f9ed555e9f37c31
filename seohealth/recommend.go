package seohealth

// recommend runs the advisory rule table over a normalized result. Every
// matching rule fires; ordering encodes priority.
func recommend(r *Result) []string {
	var recommendations []string

	if r.PerformanceScore != nil {
		switch {
		case *r.PerformanceScore < 50:
			recommendations = append(recommendations,
				"🚨 Critical: Performance score is very low. Prioritize optimizing images, reducing JavaScript, and implementing code splitting.")
		case *r.PerformanceScore < 90:
			recommendations = append(recommendations,
				"⚠️ Performance needs improvement. Consider lazy loading images and deferring non-critical JavaScript.")
		}
	}

	if r.SEOScore != nil && *r.SEOScore < 90 {
		recommendations = append(recommendations,
			"📋 SEO Score could be improved. Check meta tags, headings structure, and ensure proper canonical URLs.")
	}

	if r.AccessibilityScore != nil && *r.AccessibilityScore < 90 {
		recommendations = append(recommendations,
			"♿ Accessibility score needs attention. Add alt text to images and ensure proper color contrast.")
	}

	cwv := r.CoreWebVitals
	if cwv.LCPCategory != nil && *cwv.LCPCategory == "poor" {
		recommendations = append(recommendations,
			"🐌 LCP is poor. Optimize your largest content element (usually hero image) and improve server response time.")
	}
	if cwv.CLSCategory != nil && *cwv.CLSCategory == "poor" {
		recommendations = append(recommendations,
			"📐 CLS is poor. Reserve space for images and ads to prevent layout shifts.")
	}
	if cwv.FIDCategory != nil && *cwv.FIDCategory == "poor" {
		recommendations = append(recommendations,
			"👆 FID is poor. Reduce JavaScript execution time and break up long tasks.")
	}

	// Top-3 opportunities, high priority only
	for i, opp := range r.Opportunities {
		if i >= 3 {
			break
		}
		if opp.Priority == "high" {
			desc := opp.Description
			if len(desc) > 100 {
				desc = desc[:100]
			}
			recommendations = append(recommendations,
				"🔧 High Priority: "+opp.Title+" - "+desc+"...")
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"✅ Great job! Your website is well-optimized. Continue monitoring for any changes.")
	}

	return recommendations
}
