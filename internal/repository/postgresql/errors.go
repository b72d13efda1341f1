package postgresql

import (
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNoTransaction = errors.New("postgresql: lock requested outside a transaction")

const uniqueViolation = "23505"

// storeError marks timeouts and connection failures as ErrStoreUnavailable
// and wraps everything else with the failed operation.
func storeError(op string, err error) error {
	if err == nil || errors.Is(err, database.ErrStoreUnavailable) {
		return err
	}

	var connectErr *pgconn.ConnectError
	if database.IsContextError(err) || pgconn.Timeout(err) || errors.As(err, &connectErr) {
		return database.Unavailable(op, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// uniqueConstraint returns the violated constraint name of a unique violation.
func uniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// utc normalises a scanned timestamptz, which pgx returns in time.Local.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
