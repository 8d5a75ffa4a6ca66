package command

import (
	"context"

	"github.com/keshon/monday-bot/pkg/cmd"
)

type StatusCommand struct {
	deps *Deps
}

func (c *StatusCommand) Name() string        { return "status" }
func (c *StatusCommand) Description() string { return "Check Monday's current status and mood" }
func (c *StatusCommand) Category() string    { return categoryInfo }

func (c *StatusCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := RequestFrom(inv)
	if err != nil {
		return err
	}
	line, err := c.deps.Persona.Status(c.deps.Mood.Snapshot())
	if err != nil {
		return err
	}
	return req.Reply(ctx, line)
}
