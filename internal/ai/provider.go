// Package ai talks to the completion endpoint. Providers do the wire work;
// Client adds the per-call timeout, outbound rate limiting and reply cleanup.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/keshon/monday-bot/internal/config"
	"github.com/keshon/monday-bot/pkg/retrylimit"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrEmptyCompletion is returned when the endpoint answers with no usable text.
var ErrEmptyCompletion = errors.New("empty completion")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider sends one completion request.
type Provider interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Settings are the per-request generation parameters.
type Settings struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

// Client wraps a Provider. It is safe for concurrent use if the provider is.
type Client struct {
	provider Provider
	name     string
	limiter  *retrylimit.AdaptiveLimiter
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewClient wraps p. A zero timeout means no per-call deadline; a nil limiter
// disables outbound rate limiting.
func NewClient(name string, p Provider, lim *retrylimit.AdaptiveLimiter, timeout time.Duration) *Client {
	return &Client{
		provider: p,
		name:     name,
		limiter:  lim,
		timeout:  timeout,
		logger:   log.With().Str("component", "ai").Str("provider", name).Logger(),
	}
}

// New builds the client selected by cfg.Bot.Provider.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	s := Settings{
		Model:       cfg.Model(),
		MaxTokens:   cfg.Bot.MaxTokens,
		Temperature: cfg.Bot.Temperature,
	}

	var (
		p   Provider
		err error
	)
	switch cfg.Bot.Provider {
	case config.ProviderOpenAI, "":
		p, err = NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.Bot.BaseURL, s)
	case config.ProviderGemini:
		p, err = NewGeminiProvider(ctx, cfg.GeminiAPIKey, s)
	default:
		err = fmt.Errorf("unsupported AI_PROVIDER: %s", cfg.Bot.Provider)
	}
	if err != nil {
		return nil, err
	}

	lim := retrylimit.NewAdaptiveLimiter(2, 0.2, 5, 0.5, 0.5)
	return NewClient(cfg.Bot.Provider, p, lim, cfg.Bot.RequestTimeout), nil
}

// Generate sends messages once and returns the cleaned reply. Failures are
// returned as-is; nothing is retried.
func (c *Client) Generate(ctx context.Context, messages []Message) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logCall(c.logger, messages)
	start := time.Now()

	var raw string
	err := retrylimit.Do(ctx, c.limiter, func() error {
		var err error
		raw, err = c.provider.Generate(ctx, messages)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", c.name, err)
	}

	reply := cleanReply(raw)
	if reply == "" {
		return "", fmt.Errorf("%s completion: %w", c.name, ErrEmptyCompletion)
	}

	c.logger.Debug().
		Dur("latency", time.Since(start)).
		Int("reply_len", len(reply)).
		Msg("completion received")
	return reply, nil
}

// logCall logs the prompt shape before a request, at debug level.
func logCall(logger zerolog.Logger, messages []Message) {
	if logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	logger.Debug().Int("messages", len(messages)).Msg("sending completion request")
	for i, m := range messages {
		logger.Debug().
			Int("index", i).
			Str("role", m.Role).
			Int("len", len(m.Content)).
			Str("preview", preview(m.Content, 200)).
			Msg("completion message")
	}
}
