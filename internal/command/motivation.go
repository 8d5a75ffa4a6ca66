package command

import (
	"context"

	"github.com/keshon/monday-bot/pkg/cmd"
)

type MotivationCommand struct {
	deps *Deps
}

func (c *MotivationCommand) Name() string        { return "motivation" }
func (c *MotivationCommand) Description() string { return "Give a sarcastic motivational speech" }
func (c *MotivationCommand) Category() string    { return categoryPersona }

func (c *MotivationCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := RequestFrom(inv)
	if err != nil {
		return err
	}
	return req.Reply(ctx, c.deps.Persona.Motivation())
}
