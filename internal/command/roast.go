package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/monday-bot/pkg/cmd"
)

type RoastCommand struct {
	deps *Deps
}

func (c *RoastCommand) Name() string        { return "roast" }
func (c *RoastCommand) Description() string { return "Roast a user with Monday's special brand of love" }
func (c *RoastCommand) Usage() string       { return "[@user]" }
func (c *RoastCommand) Category() string    { return categoryPersona }

func (c *RoastCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := RequestFrom(inv)
	if err != nil {
		return err
	}

	target, err := c.target(req, strings.TrimSpace(inv.Raw))
	if err != nil {
		return err
	}

	count := c.deps.Mood.RecordRoast()
	return req.Reply(ctx, c.deps.Persona.Roast(target.Name, count))
}

// target is resolved from the argument text alone: the author when it is
// empty, a mention written in it, or a member found by name. Mentions the
// transport added on its own (a replied-to author) are not targets.
func (c *RoastCommand) target(req *Request, arg string) (User, error) {
	if arg == "" {
		return req.Author, nil
	}
	if id, ok := mentionID(arg); ok {
		for _, u := range req.Mentions {
			if u.ID == id {
				return u, nil
			}
		}
	}
	if req.Lookup != nil {
		if u, ok := req.Lookup(arg); ok {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("%w: %q", ErrMemberNotFound, arg)
}

// mentionID extracts the id of a leading <@id> or <@!id> mention.
func mentionID(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "<@") {
		return "", false
	}
	end := strings.IndexByte(arg, '>')
	if end < 0 {
		return "", false
	}
	id := strings.TrimPrefix(arg[2:end], "!")
	if id == "" {
		return "", false
	}
	return id, true
}
