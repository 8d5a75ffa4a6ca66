package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/keshon/monday-bot/internal/config"
	"github.com/keshon/monday-bot/pkg/retrylimit"
)

type fakeProvider struct {
	reply string
	err   error
	calls int
	block bool
}

func (f *fakeProvider) Generate(ctx context.Context, messages []Message) (string, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func TestCleanReply(t *testing.T) {
	cases := map[string]string{
		"  plain  ":                          "plain",
		"<think>hmm\nlet me see</think>Fine.": "Fine.",
		`"Quoted reply"`:                      "Quoted reply",
		"“Curly”":                             "Curly",
		`"`:                                   `"`,
		"<think>only thoughts</think>":        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanReply(in), "input %q", in)
	}
}

func TestPreviewKeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "héé...", preview("hééllo", 3))
	assert.True(t, utf8.ValidString(preview(strings.Repeat("ж", 300), 199)))
}

func TestClientCleansReply(t *testing.T) {
	p := &fakeProvider{reply: "<think>x</think> Oh joy. "}
	c := NewClient("fake", p, nil, time.Second)

	got, err := c.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "Oh joy.", got)
}

func TestClientEmptyCompletion(t *testing.T) {
	c := NewClient("fake", &fakeProvider{reply: "   "}, nil, 0)
	_, err := c.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestClientDoesNotRetry(t *testing.T) {
	quota := &retrylimit.StatusError{Code: http.StatusTooManyRequests, Err: errors.New("quota")}
	p := &fakeProvider{err: quota}
	lim := retrylimit.NewAdaptiveLimiter(4, 1, 8, 1, 0.5)
	c := NewClient("fake", p, lim, time.Second)

	_, err := c.Generate(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, retrylimit.IsRateLimit(err))
	assert.Equal(t, 1, p.calls)
	assert.InDelta(t, 2.0, lim.CurrentLimit(), 1e-9)
}

func TestClientTimeout(t *testing.T) {
	c := NewClient("fake", &fakeProvider{block: true}, nil, 10*time.Millisecond)
	_, err := c.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type chatRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float32   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

func TestOpenAIProviderRequestShape(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Oh joy, another human problem."}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("sk-test", srv.URL+"/v1", Settings{Model: "gpt-4o", MaxTokens: 300, Temperature: 0.8})
	require.NoError(t, err)

	reply, err := p.Generate(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are Monday"},
		{Role: RoleUser, Content: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Oh joy, another human problem.", reply)

	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, 300, got.MaxTokens)
	assert.InDelta(t, 0.8, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "hello", got.Messages[1].Content)
}

func TestOpenAIProviderQuotaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "You exceeded your current quota", "type": "insufficient_quota", "code": "insufficient_quota"}}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("sk-test", srv.URL+"/v1", Settings{Model: "gpt-4o", MaxTokens: 10})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.True(t, retrylimit.IsRateLimit(err))
}

func TestOpenAIProviderNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("sk-test", srv.URL+"/v1", Settings{Model: "gpt-4o"})
	require.NoError(t, err)
	_, err = p.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestNewOpenAIProviderNeedsKey(t *testing.T) {
	_, err := NewOpenAIProvider("", "", Settings{})
	assert.Error(t, err)
}

func TestGeminiContents(t *testing.T) {
	system, contents := geminiContents([]Message{
		{Role: RoleSystem, Content: "You are Monday"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "ugh"},
	})
	assert.Equal(t, "You are Monday", system)
	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, "ugh", contents[1].Parts[0].Text)
}

func TestNewSelectsProvider(t *testing.T) {
	cfg := config.Default()
	cfg.OpenAIAPIKey = "sk-test"
	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIProvider{}, c.provider)

	cfg.Bot.Provider = "llama"
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)

	cfg.Bot.Provider = config.ProviderGemini
	_, err = New(context.Background(), cfg)
	assert.Error(t, err, "gemini without a key")
}
