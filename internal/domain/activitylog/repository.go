package activitylog

import (
	"context"
	"time"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log ActivityLog) (ActivityLog, error)
	// GetByID returns ErrActivityLogNotFound unless the log belongs to employeeID.
	GetByID(ctx context.Context, employeeID, id string) (ActivityLog, error)
	Update(ctx context.Context, log ActivityLog) (ActivityLog, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ActivityLog, error)
	// ListBetween returns logs with from <= Date < to.
	ListBetween(ctx context.Context, from, to time.Time) ([]ActivityLog, error)
	ListAll(ctx context.Context) ([]ActivityLog, error)
}
