// Package migrations creates the database schema on start-up.
package migrations

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/soulsync/internal/logger"
)

//go:embed schema.sql
var schema string

// Apply creates all tables and indexes that do not exist yet.
// Statements are idempotent, so Apply is safe to run on every start.
func Apply(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Log.Info("database schema is up to date")
	return nil
}
