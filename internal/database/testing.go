package database

import (
	"context"
	"testing"
	"time"

	"github.com/Karun12234/mlb-inning-report/internal/config"
)

// SetupTestDB connects to the test database described by
// config/config.yaml.test. Tests that need a live database skip when no
// server is reachable, so the suite stays runnable without infrastructure.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg, err := config.Load("../../config/config.yaml.test")
	if err != nil {
		t.Skipf("test database config not available: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	verifyCtx, verifyCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer verifyCancel()

	if err := db.Ping(verifyCtx); err != nil {
		db.Close()
		t.Skipf("test database unreachable: %v", err)
	}

	return db
}

// TeardownTestDB closes the database connection cleanly
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	db.Close()
}
