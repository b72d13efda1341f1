package activitylog

import "context"

type ActivityLogService interface {
	Add(ctx context.Context, req AddActivityLogRequest) (ActivityLogResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ActivityLogResponse, error)
	Edit(ctx context.Context, req EditActivityLogRequest) (ActivityLogResponse, error)
	Accept(ctx context.Context, employeeID, id string) (ActivityLogResponse, error)
	Reject(ctx context.Context, employeeID, id string) (ActivityLogResponse, error)
	// ListByDate returns the logs created on date (YYYY-MM-DD) in the business timezone.
	ListByDate(ctx context.Context, date string) ([]ActivityLogResponse, error)
	ListAll(ctx context.Context) ([]ActivityLogResponse, error)
}
