// Package migration applies the embedded SQL schema migrations.
package migration

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/errors"
)

//go:embed sql/*.sql
var migrationFS embed.FS

const migrationDir = "sql"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Register schedules the migrations as a start hook when migration.enabled is set.
// Invoke it before the HTTP delivery so the schema is current before serving.
func Register(params Params) {
	if params.Config.Migration == nil || !params.Config.Migration.Enabled {
		params.Logger.Info("Schema migrations disabled")

		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return Up(ctx, params.Config, params.Logger)
		},
	})
}

// NewSource returns the embedded migration files as a golang-migrate source.
func NewSource() (source.Driver, error) {
	src, err := iofs.New(migrationFS, migrationDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	return src, nil
}

// Up applies every pending migration. It opens its own connection so that
// closing the migrator never touches the application's pool.
func Up(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	connCfg := *cfg.Postgres
	connCfg.Replicas = nil

	db, err := pgLib.New(&connCfg)
	if err != nil {
		return errors.Wrap(err, "failed to connect for migrations")
	}

	sqlDB, err := db.WithContext(ctx).DB()
	if err != nil {
		return errors.Wrap(err, "failed to get migration sql.DB")
	}

	driver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		_ = sqlDB.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	src, err := NewSource()
	if err != nil {
		_ = driver.Close()

		return err
	}

	migrator, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	// Closes the source, the driver and the dedicated sql.DB.
	defer migrator.Close()

	migrator.Log = &migrateLogger{logger: logger}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "failed to read migration version")
	}

	logger.Info("Schema migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

// migrateLogger adapts slog to migrate.Logger.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug("migrate", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
