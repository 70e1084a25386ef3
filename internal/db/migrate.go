package db

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-insights/db/migrations"
)

// ErrDirty is returned when a previous migration failed half way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate brings the campaigns schema at addr up to migrations.Version.
func Migrate(addr string, logger *slog.Logger) error {
	return migrateFS(migrations.FS, addr, migrations.Version, logger)
}

func migrateFS(fsys fs.FS, addr string, version uint, logger *slog.Logger) error {
	src, err := iofs.New(fsys, ".")
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("connecting migrator: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return err
	case dirty:
		return fmt.Errorf("schema version %d: %w", current, ErrDirty)
	}

	if err = mg.Migrate(version); errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("schema up to date", slog.Uint64("version", uint64(current)))
		return nil
	} else if err != nil {
		return fmt.Errorf("migrating from %d to %d: %w", current, version, err)
	}
	logger.Info("schema migrated", slog.Uint64("from", uint64(current)), slog.Uint64("to", uint64(version)))
	return nil
}
