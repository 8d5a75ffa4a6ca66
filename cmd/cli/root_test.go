package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/monday-bot/internal/ai"
	"github.com/keshon/monday-bot/internal/app"
	"github.com/keshon/monday-bot/internal/config"
)

type echoAI struct{}

func (echoAI) Generate(_ context.Context, messages []ai.Message) (string, error) {
	return "You said: " + messages[len(messages)-1].Content, nil
}

func fakeBuild(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app.App, error) {
	return app.NewWithGenerator(cfg, logger, echoAI{}), nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	root := newRootCmdWith(&stdout, &stderr, fakeBuild)
	missing := filepath.Join(t.TempDir(), "none.json")
	root.SetArgs(append([]string{"--config", missing}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func TestChatCommandsAreListed(t *testing.T) {
	root := newRootCmdWith(&bytes.Buffer{}, &bytes.Buffer{}, fakeBuild)
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"commands", "config", "monday", "mood", "motivation", "roast", "status"} {
		assert.Contains(t, names, want)
	}
}

func TestMondayCommand(t *testing.T) {
	out, err := execute(t, "--user", "Ann", "monday", "is", "it", "friday")
	require.NoError(t, err)
	assert.Contains(t, out, "You said: Context: Current mood: sarcastic. Requests processed today: 1. User Ann says: is it friday")
}

func TestRoastByName(t *testing.T) {
	out, err := execute(t, "roast", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "bob")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "- Monday"))
}

func TestMissingArgumentIsAnsweredInCharacter(t *testing.T) {
	out, err := execute(t, "monday")
	require.Error(t, err)
	assert.Contains(t, out, "Error: message is a required argument that is missing - Monday")
}

func TestMissingAPIKey(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")

	var stdout, stderr bytes.Buffer
	root := newRootCmdWith(&stdout, &stderr, fakeBuild)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.json"), "mood"})
	err := root.Execute()
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestRunPrintsFailure(t *testing.T) {
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	var stdout, stderr bytes.Buffer
	root := newRootCmdWith(&stdout, &stderr, fakeBuild)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.json"), "mood"})

	assert.Equal(t, 1, run(root, &stderr))
	assert.Contains(t, stderr.String(), "Error: API key for the selected provider is not set (openai)")
	assert.Empty(t, stdout.String())
}

func TestRunSuccess(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	root := newRootCmdWith(&stdout, &stderr, fakeBuild)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.json"), "motivation"})

	assert.Equal(t, 0, run(root, &stderr))
	assert.Contains(t, stdout.String(), "- Monday")
}

func TestConfigIsMasked(t *testing.T) {
	out, err := execute(t, "config", "--json")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-test-1234567890")

	var file config.File
	require.NoError(t, json.Unmarshal([]byte(out), &file))
	assert.Equal(t, "sk-t****90", file.OpenAIAPIKey)
	assert.Equal(t, "openai", file.Bot.Provider)
	assert.Equal(t, "30s", file.Bot.RequestTimeout)

	out, err = execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "openai_api_key:")
	assert.Contains(t, out, "sk-t****90")
	assert.Contains(t, out, "bot_settings:")
}
