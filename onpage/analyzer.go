package onpage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/apex/log"

	"github.com/seo-audit-tool/backend/apierr"
	"github.com/seo-audit-tool/backend/urlutil"
)

const fetchTimeout = 15 * time.Second

// Analyzer fetches a page and scores its on-page SEO factors.
type Analyzer struct {
	client *http.Client
}

func NewAnalyzer() *Analyzer {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Analyzer{
		client: &http.Client{
			Timeout:   fetchTimeout,
			Transport: transport,
		},
	}
}

// Analyze downloads the page and runs every check against the parsed
// document.
func (a *Analyzer) Analyze(ctx context.Context, targetURL string) (*Result, error) {
	if err := urlutil.ValidateURL(targetURL); err != nil {
		return nil, apierr.Wrap(apierr.InvalidInput, "invalid URL", err)
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, apierr.Wrap(apierr.InvalidInput, "invalid URL", err)
	}
	req.Header.Set("User-Agent", "SEOAuditTool/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apierr.Wrap(apierr.Upstream, "failed to fetch page", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, apierr.Wrap(apierr.Upstream, "failed to read page body", err)
	}
	fetchTime := time.Since(start)

	pageSize := buf.Len()
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		if size, err := strconv.Atoi(cl); err == nil && size > 0 {
			pageSize = size
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, apierr.Wrap(apierr.Upstream, "failed to parse page HTML", err)
	}

	result := a.analyzeDocument(doc, targetURL, pageSize, fetchTime)
	log.WithField("url", targetURL).WithField("score", result.Score).Info("on-page analysis complete")
	return result, nil
}

func (a *Analyzer) analyzeDocument(doc *goquery.Document, targetURL string, pageSize int, fetchTime time.Duration) *Result {
	result := &Result{URL: targetURL}

	result.Title = checkTitle(doc)
	result.Meta = checkMeta(doc)
	result.Headings = checkHeadings(doc)
	result.Content = checkContent(doc)
	result.Delivery = checkDelivery(doc, pageSize, fetchTime)
	result.Links = checkLinks(doc, targetURL)

	result.Score = overallScore(result)
	result.Recommendations = recommend(result)
	return result
}

func checkTitle(doc *goquery.Document) TitleCheck {
	title := doc.Find("title").First().Text()
	length := len(title)

	score := 0
	if length > 0 {
		switch {
		case length >= 30 && length <= 60:
			score = 100
		case length < 30:
			score = 50
		default:
			score = 70
		}
	}

	return TitleCheck{
		Title:    title,
		Length:   length,
		HasTitle: length > 0,
		Score:    score,
	}
}

func checkMeta(doc *goquery.Document) MetaCheck {
	meta := MetaCheck{}

	meta.Description, _ = doc.Find("meta[name='description']").Attr("content")
	meta.DescriptionLen = len(meta.Description)
	meta.HasDescription = meta.DescriptionLen > 0

	meta.Keywords, _ = doc.Find("meta[name='keywords']").Attr("content")
	meta.HasKeywords = len(meta.Keywords) > 0

	meta.Robots, _ = doc.Find("meta[name='robots']").Attr("content")
	meta.Viewport, _ = doc.Find("meta[name='viewport']").Attr("content")

	score := 0
	if meta.HasDescription {
		if meta.DescriptionLen >= 120 && meta.DescriptionLen <= 160 {
			score += 40
		} else {
			score += 20
		}
	}
	if meta.HasKeywords {
		score += 20
	}
	if meta.Viewport != "" {
		score += 20
	}
	if meta.Robots != "" {
		score += 20
	}

	meta.Score = score
	return meta
}

func checkHeadings(doc *goquery.Document) HeadingCheck {
	headings := HeadingCheck{}

	headings.H1Count = doc.Find("h1").Length()
	headings.H2Count = doc.Find("h2").Length()
	headings.H3Count = doc.Find("h3").Length()

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		headings.H1Text = append(headings.H1Text, strings.TrimSpace(s.Text()))
	})

	score := 0
	if headings.H1Count == 1 {
		score += 40
	} else if headings.H1Count > 1 {
		score += 20
	}
	if headings.H2Count > 0 {
		score += 30
	}
	if headings.H3Count > 0 {
		score += 30
	}

	headings.Score = score
	return headings
}

func checkContent(doc *goquery.Document) ContentCheck {
	content := ContentCheck{}

	text := doc.Find("body").Text()
	content.WordCount = len(strings.Fields(text))

	images := doc.Find("img")
	content.TotalImages = images.Length()
	content.HasImages = content.TotalImages > 0

	images.Each(func(_ int, s *goquery.Selection) {
		if _, exists := s.Attr("alt"); exists {
			content.ImagesWithAlt++
		}
	})

	score := 0
	if content.WordCount >= 300 {
		score += 30
	}
	if content.HasImages {
		score += 20
		if content.ImagesWithAlt == content.TotalImages {
			score += 30
		} else if content.ImagesWithAlt > 0 {
			score += 20
		}
	}

	content.Score = score
	return content
}

func checkDelivery(doc *goquery.Document, pageSize int, fetchTime time.Duration) DeliveryCheck {
	delivery := DeliveryCheck{
		PageSize:         pageSize,
		PageSizeSeverity: "good",
		FetchTimeMS:      int(fetchTime.Milliseconds()),
		FetchSeverity:    "good",
	}

	doc.Find("meta[name='viewport']").Each(func(_ int, s *goquery.Selection) {
		content, exists := s.Attr("content")
		if exists && strings.Contains(strings.ToLower(content), "width=device-width") {
			delivery.MobileOptimized = true
		}
	})

	score := 100

	pageSizeKB := float64(pageSize) / 1024.0
	switch {
	case pageSizeKB > 5120:
		score -= 40
		delivery.PageSizeSeverity = "critical"
	case pageSizeKB > 2048:
		score -= 30
		delivery.PageSizeSeverity = "major"
	case pageSizeKB > 1024:
		score -= 20
		delivery.PageSizeSeverity = "moderate"
	case pageSizeKB > 500:
		score -= 10
		delivery.PageSizeSeverity = "minor"
	}

	ms := fetchTime.Milliseconds()
	switch {
	case ms > 3000:
		score -= 40
		delivery.FetchSeverity = "critical"
	case ms > 2000:
		score -= 30
		delivery.FetchSeverity = "major"
	case ms > 1500:
		score -= 20
		delivery.FetchSeverity = "moderate"
	case ms > 1000:
		score -= 10
		delivery.FetchSeverity = "minor"
	}

	if !delivery.MobileOptimized {
		score -= 20
	}

	delivery.Score = score
	return delivery
}

func checkLinks(doc *goquery.Document, baseURL string) LinkCheck {
	links := LinkCheck{}
	seen := map[string]bool{}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" || href == "#" {
			return
		}

		href = strings.TrimSpace(href)
		internal := strings.HasPrefix(href, "/") || strings.HasPrefix(href, baseURL)
		if strings.HasPrefix(href, "//") {
			href = "https:" + href
			internal = false
		}

		if seen[href] {
			return
		}
		seen[href] = true

		if internal {
			links.InternalLinks++
		} else if strings.HasPrefix(href, "http") {
			links.ExternalLinks++
		}
	})

	score := 100
	switch {
	case links.InternalLinks == 0:
		score -= 50
	case links.InternalLinks < 3:
		score -= 35
	case links.InternalLinks < 5:
		score -= 20
	}
	switch {
	case links.ExternalLinks == 0:
		score -= 30
	case links.ExternalLinks > 50:
		score -= 15
	}

	links.Score = score
	return links
}

func overallScore(r *Result) float64 {
	score := 0.0
	score += float64(r.Title.Score) * 0.2
	score += float64(r.Meta.Score) * 0.2
	score += float64(r.Headings.Score) * 0.15
	score += float64(r.Content.Score) * 0.2
	score += float64(r.Delivery.Score) * 0.15
	score += float64(r.Links.Score) * 0.1
	return score
}
