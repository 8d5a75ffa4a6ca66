package middleware

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/keshon/monday-bot/internal/command"
	"github.com/keshon/monday-bot/internal/mood"
	"github.com/keshon/monday-bot/internal/persona"
	"github.com/keshon/monday-bot/pkg/cmd"
)

// WithErrorReply answers a failed command in character, quoting the error.
// The error is still returned so outer middleware can log it.
func WithErrorReply(p *persona.Persona, tracker *mood.Tracker) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)
			if err == nil || errors.Is(err, context.Canceled) {
				return err
			}

			req, rerr := command.RequestFrom(inv)
			if rerr != nil {
				return err
			}
			if replyErr := req.Reply(ctx, p.CommandError(tracker.Current(), err)); replyErr != nil {
				zerolog.Ctx(ctx).Warn().Err(replyErr).Msg("failed to send error reply")
			}
			return err
		})
	}
}

// Default is the chain every chat command runs under.
func Default(logger zerolog.Logger, p *persona.Persona, tracker *mood.Tracker) []cmd.Middleware {
	return []cmd.Middleware{
		WithRecover(),
		WithErrorReply(p, tracker),
		WithCommandLogger(logger),
	}
}
