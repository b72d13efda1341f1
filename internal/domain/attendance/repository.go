package attendance

import (
	"context"
	"time"
)

// AttendanceRepository stores one record per (employee, date).
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns ErrAttendanceNotFound when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// LockDay serialises writers of the (employee, date) key until the
	// surrounding transaction ends. It must be called inside a transaction.
	LockDay(ctx context.Context, employeeID string, date time.Time) error

	// Upsert creates or replaces the record for its key.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}

type PresenceRepository interface {
	// GetByEmployeeAndDate returns ErrPresenceNotFound when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Presence, error)

	Upsert(ctx context.Context, presence Presence) error

	// InsertIfMissing writes presence only when the key has no record yet and
	// reports whether it did.
	InsertIfMissing(ctx context.Context, presence Presence) (bool, error)

	ListByDate(ctx context.Context, date time.Time) ([]Presence, error)
}
