package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apex/log"
)

const (
	geminiAPIURL   = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"
	assistantQuery = 30 * time.Second
)

// Assistant answers a prompt on behalf of one AI-chat platform.
type Assistant interface {
	Platform() string
	Ask(ctx context.Context, prompt string) string
}

// GeminiAssistant calls the Gemini generateContent API. Without a key, or
// on any live-call failure, it answers with the simulated template so the
// extraction path stays exercised.
type GeminiAssistant struct {
	apiKey string
	client *http.Client
}

func NewGeminiAssistant(apiKey string) *GeminiAssistant {
	return &GeminiAssistant{
		apiKey: apiKey,
		client: &http.Client{Timeout: assistantQuery},
	}
}

func (a *GeminiAssistant) Platform() string { return "gemini" }

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (a *GeminiAssistant) Ask(ctx context.Context, prompt string) string {
	if a.apiKey == "" {
		return simulatedResponse(prompt)
	}

	text, err := a.generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("gemini call failed, using simulated response")
		return simulatedResponse(prompt)
	}
	return text
}

func (a *GeminiAssistant) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		geminiAPIURL+"?key="+a.apiKey, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, body)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// ChatGPTAssistant stands in for a ChatGPT scraper backend. The scraper
// integration is not wired up, so answers are always simulated; the Apify
// token is accepted for configuration parity.
type ChatGPTAssistant struct {
	apifyToken string
}

func NewChatGPTAssistant(apifyToken string) *ChatGPTAssistant {
	return &ChatGPTAssistant{apifyToken: apifyToken}
}

func (a *ChatGPTAssistant) Platform() string { return "chatgpt" }

func (a *ChatGPTAssistant) Ask(_ context.Context, prompt string) string {
	return simulatedResponse(prompt)
}
