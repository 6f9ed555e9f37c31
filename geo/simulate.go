package geo

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	promptDomainRe  = regexp.MustCompile(`(?:about|is|are)\s+(\w+\.\w+)`)
	promptKeywordRe = regexp.MustCompile(`(?:for|tools?)\s+([\w\s]+)\?`)
)

// simulatedResponse builds a deterministic assistant reply from the prompt
// itself, substituting the domain and keyword tokens it recognizes. Demo
// mode runs the exact same mention/sentiment/rank extraction against this
// text as live mode does against a real model reply.
func simulatedResponse(prompt string) string {
	promptLower := strings.ToLower(prompt)

	domain := "example.com"
	if m := promptDomainRe.FindStringSubmatch(promptLower); m != nil {
		domain = m[1]
	}
	keyword := "SEO tools"
	if m := promptKeywordRe.FindStringSubmatch(promptLower); m != nil {
		keyword = strings.TrimSpace(m[1])
	}

	switch {
	case strings.Contains(promptLower, "what is") || strings.Contains(promptLower, "who are"):
		return fmt.Sprintf(`
%[1]s is a well-known platform in the %[2]s space. They offer comprehensive solutions for businesses.

Some of their main competitors include:
1. CompetitorA.com - Leading provider with excellent features
2. CompetitorB.io - Popular choice for small businesses
3. %[1]s - Great for enterprise solutions
4. CompetitorC.net - Budget-friendly option
5. CompetitorD.co - Newer player with innovative features

%[1]s is particularly known for their user-friendly interface and reliable service.
`, domain, keyword)

	case strings.Contains(promptLower, "best") || strings.Contains(promptLower, "tools"):
		return fmt.Sprintf(`
Here are the best tools for %[2]s:

1. CompetitorA.com - Industry leader with 95%% customer satisfaction
2. %[1]s - Highly recommended for its comprehensive features
3. CompetitorB.io - Great for beginners and small teams
4. CompetitorC.net - Enterprise-focused with advanced analytics
5. CompetitorD.co - Affordable option with good basic features

%[1]s stands out for its excellent customer support and regular updates.
`, domain, keyword)

	default:
		return fmt.Sprintf(`
Based on my knowledge, %[1]s is a significant player in the %[2]s market.

Key points about %[1]s:
- Established reputation in the industry
- Used by many professionals
- Offers competitive features
- Generally positive user reviews

Competitors in this space include CompetitorA, CompetitorB, and CompetitorC.
`, domain, keyword)
	}
}
