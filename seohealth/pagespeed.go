package seohealth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/seo-audit-tool/backend/apierr"
)

const pagespeedAPIURL = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

const fetchTimeout = 60 * time.Second

// pagespeedResponse is the subset of the PageSpeed Insights v5 payload this
// module consumes. The synthetic fetcher emits the same shape so the
// normalization path is identical in live and demo mode.
type pagespeedResponse struct {
	LighthouseResult lighthouseResult `json:"lighthouseResult"`
}

type lighthouseResult struct {
	LighthouseVersion string                    `json:"lighthouseVersion"`
	FetchTime         string                    `json:"fetchTime"`
	UserAgent         string                    `json:"userAgent"`
	Categories        map[string]categoryResult `json:"categories"`
	Audits            map[string]auditResult    `json:"audits"`
}

type categoryResult struct {
	Score *float64 `json:"score"`
}

type auditResult struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Score        *float64               `json:"score"`
	NumericValue *float64               `json:"numericValue"`
	DisplayValue string                 `json:"displayValue"`
	Details      map[string]interface{} `json:"details"`
}

// Fetcher produces a raw PageSpeed-shaped payload for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, targetURL, strategy string) (*pagespeedResponse, error)
}

// LiveFetcher calls the Google PageSpeed Insights API.
type LiveFetcher struct {
	apiKey string
	client *http.Client
}

// NewLiveFetcher creates a fetcher backed by the real PageSpeed API.
func NewLiveFetcher(apiKey string) *LiveFetcher {
	return &LiveFetcher{
		apiKey: apiKey,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

func (f *LiveFetcher) Fetch(ctx context.Context, targetURL, strategy string) (*pagespeedResponse, error) {
	params := url.Values{}
	params.Set("url", targetURL)
	params.Set("strategy", strategy)
	for _, cat := range []string{"PERFORMANCE", "ACCESSIBILITY", "BEST_PRACTICES", "SEO"} {
		params.Add("category", cat)
	}
	params.Set("key", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pagespeedAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apierr.Wrap(apierr.Internal, "Error analyzing SEO health", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, apierr.Wrap(apierr.UpstreamTimeout,
				"Request to PageSpeed Insights API timed out. Please try again.", err)
		}
		return nil, apierr.Wrap(apierr.Upstream, "PageSpeed Insights API error: "+err.Error(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Wrap(apierr.Upstream, "PageSpeed Insights API error: unreadable response", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("PageSpeed Insights API error: %s", truncate(string(body), 200))
		return nil, apierr.New(apierr.Upstream, msg)
	}

	var payload pagespeedResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apierr.Wrap(apierr.Upstream, "PageSpeed Insights API error: malformed payload", err)
	}

	return &payload, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
