package geo

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/apex/log"

	"github.com/seo-audit-tool/backend/apierr"
	"github.com/seo-audit-tool/backend/urlutil"
)

// Service probes AI-chat platforms for brand visibility.
type Service struct {
	assistants []Assistant
	debug      bool
}

func NewService(geminiAPIKey, apifyToken string, debug bool) *Service {
	return &Service{
		assistants: []Assistant{
			NewGeminiAssistant(geminiAPIKey),
			NewChatGPTAssistant(apifyToken),
		},
		debug: debug,
	}
}

// Analyze runs every generated query against every platform and aggregates
// the mentions into a visibility summary.
func (s *Service) Analyze(ctx context.Context, req *Request) (*Result, error) {
	if strings.TrimSpace(req.Domain) == "" {
		return nil, apierr.New(apierr.InvalidInput, "domain is required")
	}
	domain := urlutil.CleanDomain(req.Domain)

	queries := buildQueries(domain, req.Keywords)
	log.WithField("domain", domain).WithField("queries", len(queries)).Info("starting AI visibility check")

	result := &Result{
		Domain:   domain,
		Keywords: req.Keywords,
		Mentions: []BrandMention{},
	}
	if s.debug {
		result.RawResponses = map[string]map[string]string{}
	}

	checkCompetitors := req.CheckCompetitors == nil || *req.CheckCompetitors

	for _, query := range queries {
		for _, assistant := range s.assistants {
			answer := assistant.Ask(ctx, query)
			mention := s.inspect(assistant.Platform(), query, domain, answer, checkCompetitors)
			result.Mentions = append(result.Mentions, mention)
			if s.debug {
				if result.RawResponses[assistant.Platform()] == nil {
					result.RawResponses[assistant.Platform()] = map[string]string{}
				}
				result.RawResponses[assistant.Platform()][query] = answer
			}
		}
	}

	result.Summary = summarize(result.Mentions)
	result.Recommendations = recommend(result)
	return result, nil
}

// buildQueries mirrors the probe set a brand owner would ask an assistant:
// two direct brand questions plus keyword-driven discovery prompts for up
// to the first three keywords.
func buildQueries(domain string, keywords []string) []string {
	queries := []string{
		fmt.Sprintf("What is %s?", domain),
		fmt.Sprintf("Who are the main competitors of %s?", domain),
	}
	for i, kw := range keywords {
		if i >= 3 {
			break
		}
		queries = append(queries,
			fmt.Sprintf("What are the best tools for %s?", kw),
			fmt.Sprintf("Compare top %s platforms", kw),
		)
	}
	return queries
}

func (s *Service) inspect(platform, query, domain, answer string, checkCompetitors bool) BrandMention {
	mention := BrandMention{
		Platform: platform,
		Query:    query,
	}

	mention.Mentioned = Mentioned(answer, domain)
	if mention.Mentioned {
		ctxText := MentionContext(answer)
		mention.Context = &ctxText
		sentiment := ExtractSentiment(answer, domain)
		mention.Sentiment = &sentiment
		mention.Rank = ExtractRank(answer, domain)
	}
	if checkCompetitors {
		mention.CompetitorsMentioned = ExtractCompetitors(answer, domain)
	}

	return mention
}

func summarize(mentions []BrandMention) Summary {
	summary := Summary{
		TotalChecks:        len(mentions),
		SentimentBreakdown: map[string]int{"positive": 0, "neutral": 0, "negative": 0},
	}

	var rankSum int
	var rankCount int
	for _, m := range mentions {
		if !m.Mentioned {
			continue
		}
		summary.MentionsFound++
		if m.Sentiment != nil {
			summary.SentimentBreakdown[*m.Sentiment]++
		}
		if m.Rank != nil && *m.Rank > 0 {
			rankSum += *m.Rank
			rankCount++
		}
	}

	if summary.TotalChecks > 0 {
		summary.MentionRate = math.Round(float64(summary.MentionsFound)/float64(summary.TotalChecks)*100) / 100
	}
	if rankCount > 0 {
		avg := math.Round(float64(rankSum)/float64(rankCount)*10) / 10
		summary.AverageRank = &avg
	}

	return summary
}
