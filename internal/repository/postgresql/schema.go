package postgresql

import (
	"context"
	_ "embed"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates missing tables and indexes. It is safe to run on
// every start.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return storeError("apply schema", err)
	}
	return nil
}
