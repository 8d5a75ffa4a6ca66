// Package config resolves the bot configuration from defaults, an optional
// JSON or YAML file and the process environment, in that order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOpenAIModel = "gpt-4o"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultConfigPath  = "config.json"
)

var (
	ErrMissingDiscordToken = errors.New("DISCORD_TOKEN is not set")
	ErrMissingAPIKey       = errors.New("API key for the selected provider is not set")
)

// Config is the resolved configuration. Env tags name the variables that
// override file values.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	HTTPAddr     string `env:"MONDAY_HTTP_ADDR"`

	Bot BotSettings
	Log LogSettings

	// Sources lists where values were read from, for the startup log line.
	Sources []string
}

type BotSettings struct {
	Provider       string        `env:"AI_PROVIDER"`
	Model          string        `env:"MONDAY_MODEL"`
	MaxTokens      int           `env:"MONDAY_MAX_TOKENS"`
	Temperature    float32       `env:"MONDAY_TEMPERATURE"`
	BaseURL        string        `env:"OPENAI_BASE_URL"`
	CommandPrefix  string        `env:"MONDAY_PREFIX"`
	Presence       string        `env:"MONDAY_PRESENCE"`
	RequestTimeout time.Duration `env:"MONDAY_REQUEST_TIMEOUT"`
	UserCooldown   time.Duration `env:"MONDAY_USER_COOLDOWN"`
	MaxPerMinute   int           `env:"MONDAY_MAX_PER_MINUTE"`
	MoodInterval   time.Duration `env:"MONDAY_MOOD_INTERVAL"`
	ResetInterval  time.Duration `env:"MONDAY_RESET_INTERVAL"`
}

type LogSettings struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
	File   string `env:"LOG_FILE"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Bot: BotSettings{
			Provider:       ProviderOpenAI,
			MaxTokens:      300,
			Temperature:    0.8,
			CommandPrefix:  "!",
			Presence:       "being sarcastic | !monday",
			RequestTimeout: 30 * time.Second,
			UserCooldown:   3 * time.Second,
			MaxPerMinute:   30,
			MoodInterval:   time.Hour,
			ResetInterval:  24 * time.Hour,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config. path names the config file; when empty, MONDAY_CONFIG
// or config.json is used. A missing file is not an error. Load does not
// validate; call Validate or ValidateProvider.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err == nil {
		cfg.Sources = append(cfg.Sources, ".env")
	}

	if path == "" {
		path = os.Getenv("MONDAY_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath
	}

	loaded, err := mergeFile(cfg, path)
	if err != nil {
		return nil, err
	}
	if loaded {
		cfg.Sources = append(cfg.Sources, path)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Sources = append(cfg.Sources, "environment")

	cfg.Bot.Provider = strings.ToLower(strings.TrimSpace(cfg.Bot.Provider))
	return cfg, nil
}

// Model returns the configured model or the provider's default.
func (c *Config) Model() string {
	if c.Bot.Model != "" {
		return c.Bot.Model
	}
	if c.Bot.Provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultOpenAIModel
}

// APIKey returns the key of the selected provider.
func (c *Config) APIKey() string {
	if c.Bot.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Validate checks everything the Discord process needs.
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return ErrMissingDiscordToken
	}
	return c.ValidateProvider()
}

// ValidateProvider checks the LLM and command settings only. The CLI uses it
// since it never talks to Discord.
func (c *Config) ValidateProvider() error {
	switch c.Bot.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported AI_PROVIDER: %q", c.Bot.Provider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("%w (%s)", ErrMissingAPIKey, c.Bot.Provider)
	}
	if c.Bot.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.Bot.MaxTokens)
	}
	if c.Bot.Temperature < 0 || c.Bot.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2], got %v", c.Bot.Temperature)
	}
	if strings.TrimSpace(c.Bot.CommandPrefix) == "" {
		return errors.New("command prefix is empty")
	}
	if c.Bot.MoodInterval <= 0 || c.Bot.ResetInterval <= 0 {
		return errors.New("mood and reset intervals must be positive")
	}
	return nil
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	out := *c
	out.DiscordToken = mask(c.DiscordToken)
	out.OpenAIAPIKey = mask(c.OpenAIAPIKey)
	out.GeminiAPIKey = mask(c.GeminiAPIKey)
	out.Sources = append([]string(nil), c.Sources...)
	return out
}

func mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 8:
		return "****"
	default:
		return s[:4] + "****" + s[len(s)-2:]
	}
}

// File mirrors the on-disk schema. Durations are strings like "30s".
type File struct {
	DiscordToken string `json:"discord_token" yaml:"discord_token"`
	OpenAIAPIKey string `json:"openai_api_key" yaml:"openai_api_key"`
	GeminiAPIKey string `json:"gemini_api_key" yaml:"gemini_api_key"`
	HTTPAddr     string `json:"http_addr" yaml:"http_addr"`

	Bot struct {
		Provider       string   `json:"provider" yaml:"provider"`
		DefaultModel   string   `json:"default_model" yaml:"default_model"`
		MaxTokens      *int     `json:"max_tokens" yaml:"max_tokens"`
		Temperature    *float32 `json:"temperature" yaml:"temperature"`
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		CommandPrefix  string   `json:"command_prefix" yaml:"command_prefix"`
		Presence       string   `json:"presence" yaml:"presence"`
		RequestTimeout string   `json:"request_timeout" yaml:"request_timeout"`
		UserCooldown   string   `json:"user_cooldown" yaml:"user_cooldown"`
		MaxPerMinute   *int     `json:"max_requests_per_minute" yaml:"max_requests_per_minute"`
		MoodInterval   string   `json:"mood_interval" yaml:"mood_interval"`
		ResetInterval  string   `json:"reset_interval" yaml:"reset_interval"`
	} `json:"bot_settings" yaml:"bot_settings"`

	Log struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
		File   string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

// File converts c back into the on-disk schema, so printed configuration can
// be saved and loaded again.
func (c *Config) File() File {
	var f File
	f.DiscordToken = c.DiscordToken
	f.OpenAIAPIKey = c.OpenAIAPIKey
	f.GeminiAPIKey = c.GeminiAPIKey
	f.HTTPAddr = c.HTTPAddr

	b := c.Bot
	maxTokens, temperature, maxPerMinute := b.MaxTokens, b.Temperature, b.MaxPerMinute
	f.Bot.Provider = b.Provider
	f.Bot.DefaultModel = b.Model
	f.Bot.MaxTokens = &maxTokens
	f.Bot.Temperature = &temperature
	f.Bot.BaseURL = b.BaseURL
	f.Bot.CommandPrefix = b.CommandPrefix
	f.Bot.Presence = b.Presence
	f.Bot.RequestTimeout = b.RequestTimeout.String()
	f.Bot.UserCooldown = b.UserCooldown.String()
	f.Bot.MaxPerMinute = &maxPerMinute
	f.Bot.MoodInterval = b.MoodInterval.String()
	f.Bot.ResetInterval = b.ResetInterval.String()

	f.Log.Level = c.Log.Level
	f.Log.Format = c.Log.Format
	f.Log.File = c.Log.File
	return f
}

func mergeFile(cfg *Config, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return false, fmt.Errorf("decode config %s: %w", path, err)
	}

	setString(&cfg.DiscordToken, fc.DiscordToken)
	setString(&cfg.OpenAIAPIKey, fc.OpenAIAPIKey)
	setString(&cfg.GeminiAPIKey, fc.GeminiAPIKey)
	setString(&cfg.HTTPAddr, fc.HTTPAddr)

	b := &cfg.Bot
	setString(&b.Provider, fc.Bot.Provider)
	setString(&b.Model, fc.Bot.DefaultModel)
	setString(&b.BaseURL, fc.Bot.BaseURL)
	setString(&b.CommandPrefix, fc.Bot.CommandPrefix)
	setString(&b.Presence, fc.Bot.Presence)
	if fc.Bot.MaxTokens != nil {
		b.MaxTokens = *fc.Bot.MaxTokens
	}
	if fc.Bot.Temperature != nil {
		b.Temperature = *fc.Bot.Temperature
	}
	if fc.Bot.MaxPerMinute != nil {
		b.MaxPerMinute = *fc.Bot.MaxPerMinute
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"request_timeout", fc.Bot.RequestTimeout, &b.RequestTimeout},
		{"user_cooldown", fc.Bot.UserCooldown, &b.UserCooldown},
		{"mood_interval", fc.Bot.MoodInterval, &b.MoodInterval},
		{"reset_interval", fc.Bot.ResetInterval, &b.ResetInterval},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return false, fmt.Errorf("config %s: %s: %w", path, d.name, err)
		}
		*d.dst = v
	}

	setString(&cfg.Log.Level, fc.Log.Level)
	setString(&cfg.Log.Format, fc.Log.Format)
	setString(&cfg.Log.File, fc.Log.File)
	return true, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
