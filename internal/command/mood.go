package command

import (
	"context"

	"github.com/keshon/monday-bot/pkg/cmd"
)

type MoodCommand struct {
	deps *Deps
}

func (c *MoodCommand) Name() string        { return "mood" }
func (c *MoodCommand) Description() string { return "Check Monday's current mood specifically" }
func (c *MoodCommand) Category() string    { return categoryInfo }

func (c *MoodCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := RequestFrom(inv)
	if err != nil {
		return err
	}
	return req.Reply(ctx, c.deps.Persona.Mood(c.deps.Mood.Current()))
}
