package attendance

import (
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// CHECK-IN DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"-"`
	Type       string `json:"type"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !validator.IsInSlice(r.Type, EventTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: start, break, resume, end",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInTimesResponse struct {
	Start  *string `json:"start"`
	Break  *string `json:"break"`
	Resume *string `json:"resume"`
	End    *string `json:"end"`
}

type AttendanceResponse struct {
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name"`
	Date         string               `json:"date"`
	CheckInTimes CheckInTimesResponse `json:"check_in_times"`
	TimeDebt     int                  `json:"time_debt"`
	State        string               `json:"state"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

type ShiftWindowsResponse struct {
	EmployeeID string `json:"employee_id"`
	Shift      string `json:"shift"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	End        string `json:"end"`
}

// ========================================
// PRESENCE DTOs
// ========================================

type MarkExcusedRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,date"`
}

func (r *MarkExcusedRequest) Validate() error {
	return validator.Struct(r)
}

type PresenceResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// ========================================
// DEBT DTOs
// ========================================

type DebtSummaryResponse struct {
	EmployeeID       string          `json:"employee_id"`
	Days             int             `json:"days"`
	TotalDebtMinutes int             `json:"total_debt_minutes"`
	TotalDebtHours   decimal.Decimal `json:"total_debt_hours"`
}
