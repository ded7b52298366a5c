package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"catalog/config"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const usage = "Usage: migrate [up|down|force <version>|version]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.NewWithWriter(cfg, os.Stdout)
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(logger, cfg, os.Args[1:]); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, args []string) error {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	m, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("source_error", srcErr), slog.Any("database_error", dbErr))
		}
	}()

	switch args[0] {
	case "up":
		if err := postgres.MigrateUp(m); err != nil {
			return err
		}
		logger.Info("Migrations applied successfully")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "failed to revert migrations")
		}
		logger.Info("Migrations reverted successfully")
	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version argument")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Errorf("invalid version number: %s", args[1])
		}
		if err := m.Force(version); err != nil {
			return errors.Wrap(err, "failed to force migrations version")
		}
		logger.Info("Migration version forced successfully", slog.Int("version", version))
	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return errors.Wrap(err, "failed to get migrations version")
		}
		logger.Info("Current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	default:
		return errors.Errorf("unknown command %q; %s", args[0], usage)
	}

	return nil
}
