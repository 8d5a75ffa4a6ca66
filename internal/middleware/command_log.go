package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/keshon/monday-bot/internal/command"
	"github.com/keshon/monday-bot/pkg/cmd"
)

// WithCommandLogger logs every execution with a fresh request id. The request
// logger is attached to ctx, so commands log through zerolog.Ctx.
func WithCommandLogger(base zerolog.Logger) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			lc := base.With().
				Str("request_id", uuid.NewString()).
				Str("command", c.Name())
			if req, err := command.RequestFrom(inv); err == nil {
				lc = lc.Str("user_id", req.Author.ID).
					Str("user", req.Author.Name).
					Str("guild_id", req.GuildID).
					Str("channel_id", req.ChannelID)
			}
			logger := lc.Logger()
			ctx = logger.WithContext(ctx)

			start := time.Now()
			err := c.Run(ctx, inv)

			ev := logger.Info()
			if err != nil {
				ev = logger.Warn().Err(err)
			}
			ev.Int("args", len(inv.Args)).
				Dur("latency", time.Since(start)).
				Msg("command executed")
			return err
		})
	}
}
