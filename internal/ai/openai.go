package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/keshon/monday-bot/pkg/retrylimit"
)

// OpenAIProvider calls the chat-completions endpoint of OpenAI or any
// compatible server.
type OpenAIProvider struct {
	client   *openai.Client
	settings Settings
}

// NewOpenAIProvider returns a provider for apiKey. baseURL may be empty for
// the public OpenAI API.
func NewOpenAIProvider(apiKey, baseURL string, s Settings) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client:   openai.NewClientWithConfig(cfg),
		settings: s,
	}, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.settings.Model,
		MaxTokens:   p.settings.MaxTokens,
		Temperature: p.settings.Temperature,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openAIRole(m.Role),
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", withStatus(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIRole(role string) string {
	switch role {
	case RoleSystem:
		return openai.ChatMessageRoleSystem
	case RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

// withStatus exposes the HTTP status of go-openai errors to retrylimit.
func withStatus(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &retrylimit.StatusError{Code: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &retrylimit.StatusError{Code: reqErr.HTTPStatusCode, Err: err}
	}
	return fmt.Errorf("openai: %w", err)
}
