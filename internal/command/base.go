// Package command implements Monday's chat commands on top of pkg/cmd.
package command

import (
	"context"

	"github.com/keshon/monday-bot/internal/ai"
	"github.com/keshon/monday-bot/internal/limiter"
	"github.com/keshon/monday-bot/internal/mood"
	"github.com/keshon/monday-bot/internal/persona"
	"github.com/keshon/monday-bot/pkg/cmd"
)

// Generator produces a completion. *ai.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, messages []ai.Message) (string, error)
}

// Deps is what the command set needs from the process.
type Deps struct {
	Mood     *mood.Tracker
	Persona  *persona.Persona
	AI       Generator
	Limiter  *limiter.Limiter
	Registry *cmd.Registry
	Prefix   string
}

// Categorized commands are grouped in help output.
type Categorized interface {
	Category() string
}

const (
	categoryMonday  = "🤖 Monday"
	categoryPersona = "🎭 Persona"
	categoryInfo    = "🕯️ Information"
)
