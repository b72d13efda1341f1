package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, err.Error())

	// Shift resolution errors
	case errors.Is(err, schedule.ErrInvalidShift):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrInvalidWorkTime):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidEventType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrMissingPriorEvent):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrPrematureEnd):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrPresenceNotFound):
		NotFound(w, "Presence record not found")
	case errors.Is(err, attendance.ErrAlreadyPresent):
		Conflict(w, "Employee already checked in on this date")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrNIPExists):
		Conflict(w, "NIP already registered")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Activity log domain errors
	case errors.Is(err, activitylog.ErrActivityLogNotFound):
		NotFound(w, "Activity log not found")
	case errors.Is(err, activitylog.ErrNoActivityLogs):
		NotFound(w, "No activity logs found")
	case errors.Is(err, activitylog.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, database.ErrStoreUnavailable):
		slog.Warn("Store unavailable", "error", err)
		ServiceUnavailable(w, "Service temporarily unavailable, please retry")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
