package activitylog

import "github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"

type AddActivityLogRequest struct {
	EmployeeID  string `json:"-" validate:"required"`
	Description string `json:"description" validate:"required,max=2000"`
}

func (r *AddActivityLogRequest) Validate() error {
	return validator.Struct(r)
}

// EditActivityLogRequest updates only the fields that are set.
type EditActivityLogRequest struct {
	EmployeeID  string  `json:"-" validate:"required"`
	ID          string  `json:"-" validate:"required"`
	Description *string `json:"description" validate:"omitempty,min=1,max=2000"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending accepted rejected"`
}

func (r *EditActivityLogRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.Description == nil && r.Status == nil {
		return validator.ValidationErrors{{
			Field:   "description",
			Message: "description or status is required",
		}}
	}
	return nil
}

type ActivityLogResponse struct {
	ID          string `json:"activitylogid"`
	EmployeeID  string `json:"karyawan_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
