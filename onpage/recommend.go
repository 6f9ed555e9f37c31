package onpage

import "strconv"

func recommend(r *Result) []string {
	var recs []string

	if !r.Title.HasTitle {
		recs = append(recs, "Add a title tag to your page")
	} else if r.Title.Length < 30 {
		recs = append(recs, "Title tag is too short (should be 30-60 characters)")
	} else if r.Title.Length > 60 {
		recs = append(recs, "Title tag is too long (should be 30-60 characters)")
	}

	if !r.Meta.HasDescription {
		recs = append(recs, "Add a meta description")
	} else if r.Meta.DescriptionLen < 120 {
		recs = append(recs, "Meta description is too short (should be 120-160 characters)")
	} else if r.Meta.DescriptionLen > 160 {
		recs = append(recs, "Meta description is too long (should be 120-160 characters)")
	}

	if r.Headings.H1Count == 0 {
		recs = append(recs, "Add an H1 heading")
	} else if r.Headings.H1Count > 1 {
		recs = append(recs, "Multiple H1 headings found - consider using only one")
	}

	if r.Content.WordCount < 300 {
		recs = append(recs, "Add more content (aim for at least 300 words)")
	}
	if r.Content.TotalImages > 0 && r.Content.ImagesWithAlt < r.Content.TotalImages {
		recs = append(recs, "Add alt text to all images")
	}

	pageSizeKB := float64(r.Delivery.PageSize) / 1024.0
	switch {
	case pageSizeKB > 5120:
		recs = append(recs, "Critical: Page size is extremely large (>5MB). Consider optimizing images, minifying CSS/JS, and removing unnecessary resources")
	case pageSizeKB > 2048:
		recs = append(recs, "Major: Page size is very large (>2MB). Optimize images and consider lazy loading for non-critical resources")
	case pageSizeKB > 1024:
		recs = append(recs, "Moderate: Page size is large (>1MB). Look for opportunities to optimize images and resources")
	case pageSizeKB > 500:
		recs = append(recs, "Minor: Page size is above optimal (>500KB). Consider basic optimization techniques")
	}

	switch {
	case r.Delivery.FetchTimeMS > 3000:
		recs = append(recs, "Critical: Page load time is extremely slow (>3s). Consider using a CDN, optimizing server response time, and reducing resource size")
	case r.Delivery.FetchTimeMS > 2000:
		recs = append(recs, "Major: Page load time is slow (>2s). Optimize server response time and consider resource optimization")
	case r.Delivery.FetchTimeMS > 1500:
		recs = append(recs, "Moderate: Page load time is above optimal (>1.5s). Look for opportunities to improve performance")
	case r.Delivery.FetchTimeMS > 1000:
		recs = append(recs, "Minor: Page load time is slightly above optimal (>1s). Consider fine-tuning performance")
	}

	if !r.Delivery.MobileOptimized {
		recs = append(recs, "Add a proper viewport meta tag for mobile optimization (e.g., <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">)")
	}

	if r.Links.InternalLinks < 3 {
		recs = append(recs, "Add more internal links to improve site navigation and SEO (aim for at least 3-5)")
	}
	if r.Links.ExternalLinks == 0 {
		recs = append(recs, "Add relevant external links to authoritative sources to improve content credibility")
	} else if r.Links.ExternalLinks > 50 {
		recs = append(recs, "Consider reducing the number of external links (current: "+strconv.Itoa(r.Links.ExternalLinks)+") to maintain focus")
	}

	return recs
}
