package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// CleanDomain normalizes a domain string for use as a matching key:
// lower-cased, scheme and "www." prefix stripped, trailing slash removed.
// The result is stable under repeated application.
func CleanDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	d = strings.TrimRight(d, "/")
	return d
}

// DomainFromURL extracts the host part of a URL, keeping any port.
// Bare domains without a scheme are accepted.
func DomainFromURL(rawURL string) string {
	s := strings.TrimPrefix(rawURL, "https://")
	s = strings.TrimPrefix(s, "http://")
	if i := strings.Index(s, "/"); i != -1 {
		s = s[:i]
	}
	return s
}

// ValidateURL checks that rawURL is a syntactically valid absolute
// http(s) URL.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", rawURL)
	}
	return nil
}
