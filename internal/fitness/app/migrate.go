package app

import (
	"fmt"
	"log/slog"
)

// Migrate applies pending migrations to the configured database and logs the
// resulting schema version.
func Migrate(cfg Config, logger *slog.Logger) error {
	db, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	version, dirty, err := db.SchemaVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("database migrated", "file", cfg.DatabaseFile, "version", version, "dirty", dirty)
	return nil
}
