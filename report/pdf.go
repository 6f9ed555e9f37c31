package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 20.0
	bodyWidth  = 175.9 // letter width minus margins
)

type builder struct {
	pdf *fpdf.Fpdf
}

// Build renders the audit results into a PDF document.
func Build(req *Request, now time.Time) ([]byte, error) {
	b := &builder{pdf: fpdf.New("P", "mm", "Letter", "")}
	b.pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	b.pdf.SetAutoPageBreak(true, 15)

	b.titlePage(req, now)
	b.executiveSummary(req)

	if req.includes("seo") && req.SEOData != nil {
		b.seoSection(req)
	}
	if req.includes("search") && req.SearchData != nil {
		b.searchSection(req)
	}
	if req.includes("geo") && req.GeoData != nil {
		b.geoSection(req)
	}
	if req.includes("traffic") && req.TrafficData != nil {
		b.trafficSection(req)
	}

	b.footer()

	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *builder) titlePage(req *Request, now time.Time) {
	b.pdf.AddPage()
	b.pdf.Ln(50)

	b.pdf.SetFont("Helvetica", "B", 24)
	b.pdf.SetTextColor(26, 54, 93)
	b.pdf.CellFormat(bodyWidth, 12, "SEO Audit Report", "", 1, "C", false, 0, "")
	b.pdf.Ln(8)

	b.pdf.SetFont("Helvetica", "", 14)
	b.pdf.SetTextColor(74, 85, 104)
	b.pdf.CellFormat(bodyWidth, 8, "Website: "+req.URL, "", 1, "C", false, 0, "")
	b.pdf.Ln(4)
	b.pdf.CellFormat(bodyWidth, 8, "Generated: "+now.Format("January 2, 2006 at 15:04"), "", 1, "C", false, 0, "")

	if req.CompanyName != "" {
		b.pdf.Ln(10)
		b.pdf.CellFormat(bodyWidth, 8, "Prepared for: "+req.CompanyName, "", 1, "C", false, 0, "")
	}
}

func (b *builder) executiveSummary(req *Request) {
	b.pdf.AddPage()
	b.heading("Executive Summary")

	b.bodyText(fmt.Sprintf(
		"This comprehensive SEO audit report provides detailed analysis of %s. "+
			"The audit covers four key areas: SEO Health, Search Visibility, Generative Engine Optimization (GEO), "+
			"and Traffic Estimation. Each section includes actionable recommendations to improve your online presence.",
		req.URL))
	b.pdf.Ln(6)

	if req.SEOData == nil {
		return
	}

	b.subheading("Key Metrics Overview")
	rows := [][]string{}
	addScore := func(name string, score *int) {
		if score == nil {
			return
		}
		status := "Poor"
		if *score >= 90 {
			status = "Good"
		} else if *score >= 50 {
			status = "Needs Improvement"
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d/100", *score), status})
	}
	addScore("Performance", req.SEOData.PerformanceScore)
	addScore("SEO", req.SEOData.SEOScore)
	addScore("Accessibility", req.SEOData.AccessibilityScore)

	if req.TrafficData != nil {
		rows = append(rows, []string{
			"Est. Monthly Visits",
			formatThousands(req.TrafficData.Metrics.MonthlyVisits),
			"Estimated",
		})
	}

	b.table([]string{"Metric", "Score", "Status"}, rows, []float64{65, 45, 65})
}

func (b *builder) seoSection(req *Request) {
	seo := req.SEOData
	b.pdf.AddPage()
	b.heading("1. SEO Health Analysis")

	b.subheading("Performance Scores")
	rows := [][]string{}
	addRow := func(name string, score *int) {
		if score == nil {
			return
		}
		rating := "Poor"
		switch {
		case *score >= 90:
			rating = "Excellent"
		case *score >= 70:
			rating = "Good"
		case *score >= 50:
			rating = "Needs Work"
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d/100", *score), rating})
	}
	addRow("Performance", seo.PerformanceScore)
	addRow("SEO", seo.SEOScore)
	addRow("Accessibility", seo.AccessibilityScore)
	addRow("Best Practices", seo.BestPracticesScore)
	b.table([]string{"Category", "Score", "Rating"}, rows, []float64{60, 50, 65})

	b.subheading("Core Web Vitals")
	cwv := seo.CoreWebVitals
	vitals := [][]string{}
	addVital := func(metric string, value *float64, target string, category *string) {
		if value == nil {
			return
		}
		status := "?"
		if category != nil {
			switch *category {
			case "good":
				status = "Pass"
			case "needs_improvement":
				status = "Warn"
			default:
				status = "Fail"
			}
		}
		vitals = append(vitals, []string{metric, fmt.Sprintf("%v", *value), target, status})
	}
	addVital("LCP (Largest Contentful Paint)", cwv.LCP, "< 2.5s", cwv.LCPCategory)
	addVital("FID (First Input Delay)", cwv.FID, "< 100ms", cwv.FIDCategory)
	addVital("CLS (Cumulative Layout Shift)", cwv.CLS, "< 0.1", cwv.CLSCategory)
	addVital("FCP (First Contentful Paint)", cwv.FCP, "< 1.8s", cwv.FCPCategory)
	addVital("TTFB (Time to First Byte)", cwv.TTFB, "< 0.8s", cwv.TTFBCategory)
	b.table([]string{"Metric", "Value", "Target", "Status"}, vitals, []float64{70, 35, 35, 35})

	b.recommendations("SEO Recommendations", seo.Recommendations)
}

func (b *builder) searchSection(req *Request) {
	search := req.SearchData
	b.pdf.AddPage()
	b.heading("2. Search Visibility Analysis")

	if idx := search.IndexStatus; idx != nil {
		b.subheading("Index Status")
		rows := [][]string{
			{"Total Pages", fmt.Sprintf("%d", idx.TotalPages)},
			{"Indexed Pages", fmt.Sprintf("%d", idx.IndexedPages)},
			{"Not Indexed", fmt.Sprintf("%d", idx.NotIndexedPages)},
		}
		if idx.PendingPages != nil {
			rows = append(rows, []string{"Pending", fmt.Sprintf("%d", *idx.PendingPages)})
		}
		if idx.Errors != nil {
			rows = append(rows, []string{"Errors", fmt.Sprintf("%d", *idx.Errors)})
		}
		if idx.Warnings != nil {
			rows = append(rows, []string{"Warnings", fmt.Sprintf("%d", *idx.Warnings)})
		}
		b.table([]string{"Metric", "Value"}, rows, []float64{87, 88})
	}

	if len(search.SearchPerformance) > 0 {
		b.subheading("Top Search Queries")
		rows := [][]string{}
		for i, perf := range search.SearchPerformance {
			if i >= 5 {
				break
			}
			rows = append(rows, []string{
				perf.Query,
				fmt.Sprintf("%d", perf.Clicks),
				fmt.Sprintf("%d", perf.Impressions),
				fmt.Sprintf("%.2f%%", perf.CTR*100),
				fmt.Sprintf("%.1f", perf.Position),
			})
		}
		b.table([]string{"Query", "Clicks", "Impressions", "CTR", "Position"}, rows, []float64{65, 25, 35, 25, 25})
	}

	b.recommendations("Search Visibility Recommendations", search.Recommendations)
}

func (b *builder) geoSection(req *Request) {
	g := req.GeoData
	b.pdf.AddPage()
	b.heading("3. Generative Engine Optimization (GEO)")

	b.subheading("AI Visibility Summary")
	avgRank := "N/A"
	if g.Summary.AverageRank != nil {
		avgRank = fmt.Sprintf("%.1f", *g.Summary.AverageRank)
	}
	b.bodyText(fmt.Sprintf("Total Checks: %d", g.Summary.TotalChecks))
	b.bodyText(fmt.Sprintf("Mentions Found: %d", g.Summary.MentionsFound))
	b.bodyText(fmt.Sprintf("Mention Rate: %.1f%%", g.Summary.MentionRate*100))
	b.bodyText("Average Rank: " + avgRank)
	b.pdf.Ln(4)

	b.subheading("Sentiment Analysis")
	for _, sentiment := range []string{"positive", "neutral", "negative"} {
		if count := g.Summary.SentimentBreakdown[sentiment]; count > 0 {
			b.bodyText(fmt.Sprintf("%s%s: %d", strings.ToUpper(sentiment[:1]), sentiment[1:], count))
		}
	}

	b.recommendations("GEO Recommendations", g.Recommendations)
}

func (b *builder) trafficSection(req *Request) {
	t := req.TrafficData
	b.pdf.AddPage()
	b.heading("4. Traffic Estimation")

	b.subheading("Traffic Metrics")
	b.bodyText(fmt.Sprintf("Estimated Monthly Visits: %s (Range: %s - %s)",
		formatThousands(t.Metrics.MonthlyVisits),
		formatThousands(t.Metrics.MonthlyVisitsMin),
		formatThousands(t.Metrics.MonthlyVisitsMax)))
	if t.Metrics.AvgVisitDuration != nil {
		b.bodyText("Average Visit Duration: " + *t.Metrics.AvgVisitDuration)
	}
	if t.Metrics.PagesPerVisit != nil {
		b.bodyText(fmt.Sprintf("Pages per Visit: %v", *t.Metrics.PagesPerVisit))
	}
	if t.Metrics.BounceRate != nil {
		b.bodyText(fmt.Sprintf("Bounce Rate: %.1f%%", *t.Metrics.BounceRate*100))
	}
	b.bodyText("Confidence Level: " + titleCase(t.ConfidenceLevel))
	b.bodyText("Growth Trend: " + titleCase(t.GrowthTrend))
	b.pdf.Ln(4)

	if len(t.TrafficSources) > 0 {
		b.subheading("Traffic Sources")
		rows := [][]string{}
		for _, src := range t.TrafficSources {
			rows = append(rows, []string{
				src.Source,
				fmt.Sprintf("%v%%", src.Percentage),
				formatThousands(src.EstimatedVisits),
			})
		}
		b.table([]string{"Source", "Percentage", "Est. Visits"}, rows, []float64{65, 45, 65})
	}

	if len(t.TopKeywords) > 0 {
		b.subheading("Top Keywords")
		rows := [][]string{}
		for i, kw := range t.TopKeywords {
			if i >= 5 {
				break
			}
			rows = append(rows, []string{
				kw.Keyword,
				intOrNA(kw.Position),
				volumeOrNA(kw.Volume),
				cpcOrNA(kw.CPC),
			})
		}
		b.table([]string{"Keyword", "Position", "Volume", "CPC"}, rows, []float64{85, 30, 30, 30})
	}

	b.recommendations("Traffic Recommendations", t.Recommendations)
}

func (b *builder) footer() {
	b.pdf.Ln(10)
	b.pdf.SetFont("Helvetica", "I", 8)
	b.pdf.SetTextColor(128, 128, 128)
	b.pdf.MultiCell(bodyWidth, 4,
		"This report was generated automatically by the SEO Audit Tool. "+
			"Traffic estimates and AI visibility data are approximations and should be used for guidance only. "+
			"For exact figures, please consult your analytics platforms.",
		"", "C", false)
}

func (b *builder) heading(text string) {
	b.pdf.SetFont("Helvetica", "B", 16)
	b.pdf.SetTextColor(45, 55, 72)
	b.pdf.CellFormat(bodyWidth, 10, text, "", 1, "L", false, 0, "")
	b.pdf.Ln(2)
}

func (b *builder) subheading(text string) {
	b.pdf.SetFont("Helvetica", "B", 13)
	b.pdf.SetTextColor(74, 85, 104)
	b.pdf.CellFormat(bodyWidth, 8, text, "", 1, "L", false, 0, "")
	b.pdf.Ln(1)
}

func (b *builder) bodyText(text string) {
	b.pdf.SetFont("Helvetica", "", 10)
	b.pdf.SetTextColor(45, 55, 72)
	b.pdf.MultiCell(bodyWidth, 5, text, "", "L", false)
}

func (b *builder) recommendations(title string, recs []string) {
	if len(recs) == 0 {
		return
	}
	b.pdf.Ln(4)
	b.subheading(title)
	for i, rec := range recs {
		if i >= 5 {
			break
		}
		b.bodyText("- " + stripEmoji(rec))
		b.pdf.Ln(1)
	}
}

func (b *builder) table(headers []string, rows [][]string, widths []float64) {
	if len(rows) == 0 {
		return
	}

	b.pdf.SetFont("Helvetica", "B", 10)
	b.pdf.SetFillColor(45, 55, 72)
	b.pdf.SetTextColor(245, 245, 245)
	for i, h := range headers {
		b.pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	b.pdf.Ln(-1)

	b.pdf.SetFont("Helvetica", "", 9)
	b.pdf.SetTextColor(45, 55, 72)
	for r, row := range rows {
		if r%2 == 0 {
			b.pdf.SetFillColor(247, 250, 252)
		} else {
			b.pdf.SetFillColor(255, 255, 255)
		}
		for i, cell := range row {
			b.pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", true, 0, "")
		}
		b.pdf.Ln(-1)
	}
	b.pdf.Ln(4)
}

// stripEmoji drops runes outside the core fonts' latin range so the
// recommendation texts render cleanly.
func stripEmoji(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < 0x250 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	var sb strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func volumeOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return formatThousands(*v)
}

func cpcOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", *v)
}
