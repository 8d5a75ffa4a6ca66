package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/keshon/monday-bot/internal/app"
	"github.com/keshon/monday-bot/internal/command"
	"github.com/keshon/monday-bot/internal/config"
	"github.com/keshon/monday-bot/internal/logging"
	"github.com/keshon/monday-bot/pkg/cmd"
)

type options struct {
	configPath string
	user       string
	asJSON     bool
}

// builder lets tests swap the completion backend.
type builder func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app.App, error)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newRootCmdWith(stdout, stderr, app.New)
}

func newRootCmdWith(stdout, stderr io.Writer, build builder) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "monday-cli",
		Short:         "Talk to Monday without Discord",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $MONDAY_CONFIG or config.json)")
	root.PersistentFlags().StringVarP(&opts.user, "user", "u", "you", "display name used as the author")

	root.AddCommand(newConfigCmd(opts))

	// The chat commands are listed from a registry built without a backend so
	// that --help works without credentials.
	listing := app.NewWithGenerator(config.Default(), zerolog.Nop(), nil)
	for _, c := range listing.Registry.GetAll() {
		root.AddCommand(newChatCmd(c, opts, build))
	}

	return root
}

func newChatCmd(c cmd.Command, opts *options, build builder) *cobra.Command {
	use := c.Name()
	if up, ok := cmd.Root(c).(cmd.UsageProvider); ok && up.Usage() != "" {
		use += " " + up.Usage()
	}
	var aliases []string
	if ap, ok := cmd.Root(c).(cmd.AliasProvider); ok {
		aliases = ap.Aliases()
	}
	name := c.Name()

	// cobra owns "help"; the chat help is reachable through its alias.
	if name == "help" && len(aliases) > 0 {
		use, aliases = aliases[0], nil
	}

	return &cobra.Command{
		Use:     use,
		Short:   c.Description(),
		Aliases: aliases,
		RunE: func(cc *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := cfg.ValidateProvider(); err != nil {
				return err
			}
			logger, closer := logging.Setup(cfg.Log, cc.ErrOrStderr())
			defer closer.Close()

			a, err := build(cc.Context(), cfg, logger)
			if err != nil {
				return err
			}
			target := a.Registry.Get(name)
			if target == nil {
				return fmt.Errorf("unknown command %q", name)
			}

			out := cc.OutOrStdout()
			raw := strings.Join(args, " ")
			req := &command.Request{
				Author: command.User{ID: "cli", Name: opts.user},
				Reply: func(_ context.Context, text string) error {
					_, err := fmt.Fprintln(out, text)
					return err
				},
				Lookup: func(q string) (command.User, bool) {
					return command.User{ID: q, Name: q}, true
				},
			}
			return target.Run(cc.Context(), &cmd.Invocation{Args: args, Raw: raw, Data: req})
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration with secrets masked",
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			redacted := cfg.Redacted()
			file := redacted.File()
			out := cc.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(file)
			}
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(file)
		},
	}
	c.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of YAML")
	return c
}
