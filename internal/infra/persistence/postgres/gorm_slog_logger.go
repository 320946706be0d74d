package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"
)

const slowQueryThreshold = 200 * time.Millisecond

// sqlLogger sends GORM output to slog. Statements run on behalf of a request
// use that request's logger and so carry its request_id.
type sqlLogger struct {
	base      *slog.Logger
	verbosity gormlogger.LogLevel
	slow      time.Duration
}

// newGormSlogLogger logs every statement in debug mode and only failures and
// slow queries otherwise.
func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	verbosity := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		verbosity = gormlogger.Info
	}

	return &sqlLogger{base: base, verbosity: verbosity, slow: slowQueryThreshold}
}

func (l *sqlLogger) LogMode(verbosity gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.verbosity = verbosity

	return &next
}

func (l *sqlLogger) Info(ctx context.Context, format string, args ...any) {
	l.message(ctx, gormlogger.Info, format, args)
}

func (l *sqlLogger) Warn(ctx context.Context, format string, args ...any) {
	l.message(ctx, gormlogger.Warn, format, args)
}

func (l *sqlLogger) Error(ctx context.Context, format string, args ...any) {
	l.message(ctx, gormlogger.Error, format, args)
}

func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.verbosity == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.verbosity >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "sql failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.verbosity >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "sql slow", slog.Duration("threshold", l.slow)
	case l.verbosity >= gormlogger.Info:
		level, msg = slog.LevelDebug, "sql"
	default:
		return
	}

	statement, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *sqlLogger) message(ctx context.Context, min gormlogger.LogLevel, format string, args []any) {
	if l.base == nil || l.verbosity < min {
		return
	}

	level := slog.LevelInfo
	switch min {
	case gormlogger.Warn:
		level = slog.LevelWarn
	case gormlogger.Error:
		level = slog.LevelError
	}

	l.logger(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(format, args...)))
}

func (l *sqlLogger) logger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
