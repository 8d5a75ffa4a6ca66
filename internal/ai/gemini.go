package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/keshon/monday-bot/pkg/retrylimit"
)

// GeminiProvider calls the Gemini API. System messages become the system
// instruction; the rest are sent as conversation turns.
type GeminiProvider struct {
	client   *genai.Client
	settings Settings
}

// NewGeminiProvider returns a provider for apiKey.
func NewGeminiProvider(ctx context.Context, apiKey string, s Settings) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiProvider{client: client, settings: s}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, messages []Message) (string, error) {
	system, contents := geminiContents(messages)

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(p.settings.Temperature),
		MaxOutputTokens: int32(p.settings.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.settings.Model, contents, cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			return "", &retrylimit.StatusError{Code: apiErr.Code, Err: err}
		}
		return "", fmt.Errorf("gemini: %w", err)
	}
	return resp.Text(), nil
}

// geminiContents splits messages into the joined system text and the turns.
func geminiContents(messages []Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}
