// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/keshon/monday-bot/internal/config"
)

// Setup builds a logger from cfg, installs it as the global zerolog logger and
// returns it. The returned closer flushes the log file, if any.
func Setup(cfg config.LogSettings, stderr io.Writer) (zerolog.Logger, io.Closer) {
	if stderr == nil {
		stderr = os.Stderr
	}

	var console io.Writer = stderr
	if !strings.EqualFold(cfg.Format, "json") {
		console = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.DateTime}
	}

	out := console
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = zerolog.MultiLevelWriter(console, file)
		closer = file
	}

	logger := zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
	return logger, closer
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
