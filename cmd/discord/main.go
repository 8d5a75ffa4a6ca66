// cmd/discord/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/keshon/monday-bot/internal/app"
	"github.com/keshon/monday-bot/internal/config"
	"github.com/keshon/monday-bot/internal/discord"
	"github.com/keshon/monday-bot/internal/httpapi"
	"github.com/keshon/monday-bot/internal/logging"
	"github.com/keshon/monday-bot/pkg/jobmgr"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger, closer := logging.Setup(cfg.Log, os.Stderr)
	defer closer.Close()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Info().
		Str("provider", cfg.Bot.Provider).
		Str("model", cfg.Model()).
		Strs("sources", cfg.Sources).
		Msg("starting Monday")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build bot")
	}

	bot, err := discord.New(a.Registry, discord.Options{
		Token:    cfg.DiscordToken,
		Prefix:   cfg.Bot.CommandPrefix,
		Presence: cfg.Bot.Presence,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	jobs := jobmgr.NewManager(ctx, func(s string) {
		if strings.HasPrefix(s, "error:") {
			logger.Error().Str("job", s).Msg("background job failed")
			return
		}
		logger.Debug().Str("job", s).Msg("background job status")
	})
	if err := a.StartJobs(jobs); err != nil {
		logger.Fatal().Err(err).Msg("failed to start background jobs")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bot.Run(gctx)
	})
	if cfg.HTTPAddr != "" {
		g.Go(func() error {
			logger.Info().Str("addr", cfg.HTTPAddr).Msg("status endpoint listening")
			return httpapi.Serve(gctx, cfg.HTTPAddr, httpapi.NewRouter(a.Mood, jobs, logger))
		})
	}

	err = g.Wait()
	stop()
	jobs.StopAll()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("bot stopped with error")
		closer.Close()
		os.Exit(1)
	}
	logger.Info().Msg("Monday has left the building")
}
