package command

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/keshon/monday-bot/internal/ai"
	"github.com/keshon/monday-bot/internal/persona"
	"github.com/keshon/monday-bot/pkg/cmd"
)

type MondayCommand struct {
	deps *Deps
}

func (c *MondayCommand) Name() string        { return "monday" }
func (c *MondayCommand) Description() string { return "Ask Monday something. Expect sarcasm" }
func (c *MondayCommand) Usage() string       { return "<text>" }
func (c *MondayCommand) Category() string    { return categoryMonday }

func (c *MondayCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := RequestFrom(inv)
	if err != nil {
		return err
	}

	text := strings.TrimSpace(inv.Raw)
	if text == "" {
		return ErrMissingArgument
	}

	if !c.deps.Limiter.Allow(req.Author.ID) {
		zerolog.Ctx(ctx).Info().Str("user_id", req.Author.ID).Msg("completion request rate limited")
		return req.Reply(ctx, c.deps.Persona.SlowDown())
	}

	snap := c.deps.Mood.RecordRequest()
	if req.Typing != nil {
		req.Typing()
	}

	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: persona.SystemPrompt},
		{Role: ai.RoleUser, Content: c.deps.Persona.UserTurn(snap.Mood, snap.Requests, req.Author.Name, text)},
	}

	reply, err := c.deps.AI.Generate(ctx, messages)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("error generating response")
		return req.Reply(ctx, c.deps.Persona.Broken(c.deps.Mood.Current()))
	}

	return req.Reply(ctx, reply+c.deps.Persona.Signature(snap.Mood))
}
