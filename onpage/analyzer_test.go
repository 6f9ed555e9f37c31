package onpage

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goodPage = `<!DOCTYPE html>
<html>
<head>
<title>A well optimized page title for testing here</title>
<meta name="description" content="This meta description is exactly long enough to land inside the recommended window of one hundred twenty to one hundred sixty.">
<meta name="keywords" content="seo, testing">
<meta name="robots" content="index,follow">
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
<h1>Main Heading</h1>
<h2>Sub heading</h2>
<h3>Detail heading</h3>
<img src="a.png" alt="a"><img src="b.png" alt="b">
<a href="/one">one</a><a href="/two">two</a><a href="/three">three</a>
<a href="https://external.example.org">ext</a>
<p>` + strings.Repeat("word ", 320) + `</p>
</body>
</html>`

const emptyPage = `<!DOCTYPE html><html><head></head><body><p>tiny</p></body></html>`

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	require.NoError(t, err)
	return doc
}

func TestCheckTitleScoring(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		score int
	}{
		{"optimal length", `<html><head><title>A well optimized page title for testing</title></head></html>`, 100},
		{"too short", `<html><head><title>Short</title></head></html>`, 50},
		{"too long", `<html><head><title>` + strings.Repeat("long ", 20) + `</title></head></html>`, 70},
		{"missing", `<html><head></head></html>`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkTitle(docFrom(t, tt.html))
			assert.Equal(t, tt.score, got.Score)
		})
	}
}

func TestCheckMetaFullScore(t *testing.T) {
	meta := checkMeta(docFrom(t, goodPage))
	assert.True(t, meta.HasDescription)
	assert.True(t, meta.HasKeywords)
	assert.Equal(t, 100, meta.Score)
}

func TestCheckHeadings(t *testing.T) {
	h := checkHeadings(docFrom(t, goodPage))
	assert.Equal(t, 1, h.H1Count)
	assert.Equal(t, []string{"Main Heading"}, h.H1Text)
	assert.Equal(t, 100, h.Score)

	none := checkHeadings(docFrom(t, emptyPage))
	assert.Equal(t, 0, none.Score)
}

func TestCheckContent(t *testing.T) {
	c := checkContent(docFrom(t, goodPage))
	assert.GreaterOrEqual(t, c.WordCount, 300)
	assert.Equal(t, 2, c.TotalImages)
	assert.Equal(t, 2, c.ImagesWithAlt)
	assert.Equal(t, 80, c.Score)
}

func TestCheckLinksCountsAndDedupes(t *testing.T) {
	html := `<html><body>
	<a href="/a">a</a><a href="/a">dup</a><a href="/b">b</a><a href="#">skip</a>
	<a href="https://other.example.org">ext</a>
	</body></html>`
	links := checkLinks(docFrom(t, html), "https://example.com")
	assert.Equal(t, 2, links.InternalLinks)
	assert.Equal(t, 1, links.ExternalLinks)
}

func TestCheckDeliverySeverities(t *testing.T) {
	d := checkDelivery(docFrom(t, goodPage), 300*1024, 500*time.Millisecond)
	assert.Equal(t, "good", d.PageSizeSeverity)
	assert.Equal(t, "good", d.FetchSeverity)
	assert.True(t, d.MobileOptimized)
	assert.Equal(t, 100, d.Score)

	slow := checkDelivery(docFrom(t, emptyPage), 6*1024*1024, 4*time.Second)
	assert.Equal(t, "critical", slow.PageSizeSeverity)
	assert.Equal(t, "critical", slow.FetchSeverity)
	assert.False(t, slow.MobileOptimized)
	assert.Equal(t, 0, slow.Score)
}

func TestAnalyzeAgainstTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(goodPage))
	}))
	defer srv.Close()

	result, err := NewAnalyzer().Analyze(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, result.URL)
	assert.True(t, result.Title.HasTitle)
	assert.Greater(t, result.Score, 50.0)
}

func TestAnalyzeRejectsInvalidURL(t *testing.T) {
	_, err := NewAnalyzer().Analyze(context.Background(), "not-a-url")
	assert.Error(t, err)
}

func TestRecommendFlagsMissingBasics(t *testing.T) {
	doc := docFrom(t, emptyPage)
	result := &Result{
		Title:    checkTitle(doc),
		Meta:     checkMeta(doc),
		Headings: checkHeadings(doc),
		Content:  checkContent(doc),
		Delivery: checkDelivery(doc, 1024, 100*time.Millisecond),
		Links:    checkLinks(doc, "https://example.com"),
	}

	recs := recommend(result)
	joined := strings.Join(recs, "\n")
	assert.Contains(t, joined, "Add a title tag")
	assert.Contains(t, joined, "Add a meta description")
	assert.Contains(t, joined, "Add an H1 heading")
	assert.Contains(t, joined, "viewport meta tag")
}
