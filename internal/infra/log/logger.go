// Package logs builds the process-wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/errors"
)

type Params struct {
	fx.In

	Config *config.Config
}

// New writes to stdout and becomes the slog default, so packages that log
// through slog.Default share the configured handler.
func New(params Params) (*slog.Logger, error) {
	logger, err := build(os.Stdout, params.Config)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return logger, nil
}

// build picks text output for local development (env.log.pretty) and JSON
// everywhere else. Every line is tagged with the service and environment.
func build(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}

	handler := slog.Handler(slog.NewJSONHandler(w, opts))
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var tags []slog.Attr
	if name := cfg.Env.ServiceName; name != "" {
		tags = append(tags, slog.String("service", name))
	}
	if env := cfg.Env.Env; env != "" {
		tags = append(tags, slog.String("env", env))
	}

	return slog.New(handler.WithAttrs(tags)), nil
}

// parseLogLevel accepts the slog level names in any case. Empty means info.
func parseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "env.log.level %q", name)
	}

	return level, nil
}
