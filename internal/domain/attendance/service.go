package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ApplyCheckIn applies one check-in event at now to the employee's record
	// for the calendar day of now.
	ApplyCheckIn(ctx context.Context, employeeID string, event EventType, now time.Time) (Attendance, error)

	// CheckIn validates the request and applies it at the current time.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// GetAttendance retrieves the record of an employee on a date (YYYY-MM-DD)
	GetAttendance(ctx context.Context, employeeID string, date string) (AttendanceResponse, error)

	// GetShiftWindows resolves today's shift boundaries for an employee
	GetShiftWindows(ctx context.Context, employeeID string) (ShiftWindowsResponse, error)

	// MarkExcused records an excused absence (admin)
	MarkExcused(ctx context.Context, req MarkExcusedRequest) (PresenceResponse, error)

	// GetTotalDebt sums the time debt over all records of an employee
	GetTotalDebt(ctx context.Context, employeeID string) (DebtSummaryResponse, error)

	// GetDayStatusCounts counts presence statuses on a date
	GetDayStatusCounts(ctx context.Context, date time.Time) (StatusCounts, error)
}
