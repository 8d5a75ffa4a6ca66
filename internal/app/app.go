// Package app assembles Monday's components from configuration so the Discord
// and CLI binaries share one wiring.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/keshon/monday-bot/internal/ai"
	"github.com/keshon/monday-bot/internal/command"
	"github.com/keshon/monday-bot/internal/config"
	"github.com/keshon/monday-bot/internal/limiter"
	"github.com/keshon/monday-bot/internal/middleware"
	"github.com/keshon/monday-bot/internal/mood"
	"github.com/keshon/monday-bot/internal/persona"
	"github.com/keshon/monday-bot/pkg/cmd"
)

// App is the process state shared by every transport.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Mood     *mood.Tracker
	Persona  *persona.Persona
	Registry *cmd.Registry
}

// New builds the completion client from cfg and registers the commands.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	client, err := ai.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ai client: %w", err)
	}
	return NewWithGenerator(cfg, logger, client), nil
}

// NewWithGenerator is New with a caller-supplied completion backend.
func NewWithGenerator(cfg *config.Config, logger zerolog.Logger, gen command.Generator) *App {
	a := &App{
		Config:   cfg,
		Logger:   logger,
		Mood:     mood.NewTracker(),
		Persona:  persona.New(nil),
		Registry: cmd.NewRegistry(),
	}

	command.Register(a.Registry, command.Deps{
		Mood:    a.Mood,
		Persona: a.Persona,
		AI:      gen,
		Limiter: limiter.New(cfg.Bot.UserCooldown, cfg.Bot.MaxPerMinute),
		Prefix:  cfg.Bot.CommandPrefix,
	}, middleware.Default(logger, a.Persona, a.Mood)...)

	return a
}
