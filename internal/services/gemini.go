package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"askai-gateway/internal/models"
)

// GeminiChat sends the exchange to Gemini. The system turn becomes the
// model's system instruction; the remaining non-empty turns are sent as the
// parts of a single user message.
type GeminiChat struct {
	client *genai.Client
	model  string
}

// NewGeminiChat creates the client. Extra options (endpoint, HTTP client) are
// applied after the API key.
func NewGeminiChat(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiChat, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChat{client: client, model: model}, nil
}

func (g *GeminiChat) Close() {
	g.client.Close()
}

func (g *GeminiChat) Name() string { return "gemini" }

func (g *GeminiChat) Complete(ctx context.Context, messages []models.ChatMessage, temperature float64) (string, error) {
	system, parts := geminiPrompt(messages)
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini: nothing to send")
	}

	// A fresh model handle per call keeps per-request temperature isolated.
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(float32(temperature))
	model.SystemInstruction = system

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: response contained no candidates")
	}

	return extractText(resp), nil
}

func geminiPrompt(messages []models.ChatMessage) (*genai.Content, []genai.Part) {
	var system *genai.Content
	var parts []genai.Part
	for _, m := range messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		if m.Role == "system" {
			system = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			continue
		}
		parts = append(parts, genai.Text(m.Content))
	}
	return system, parts
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
