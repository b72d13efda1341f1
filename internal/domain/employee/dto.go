package employee

import (
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName      string  `json:"fullname" validate:"required,max=100"`
	Username      string  `json:"username" validate:"required,min=3,max=50"`
	Email         string  `json:"email" validate:"required,email"`
	NIP           string  `json:"nip" validate:"required,numeric"`
	PhoneNumber   string  `json:"phone_number" validate:"required"`
	Address       *string `json:"address,omitempty"`
	Division      string  `json:"division" validate:"required"`
	Shift         string  `json:"shift" validate:"required,oneof=pagi siang"`
	DateOfBirth   *string `json:"tanggal_lahir,omitempty" validate:"omitempty,date"`
	StartWorkTime *string `json:"start_work_time,omitempty" validate:"omitempty,clock"`
	BreakTime     *string `json:"break_time,omitempty" validate:"omitempty,clock"`
	EndWorkTime   *string `json:"end_work_time,omitempty" validate:"omitempty,clock"`
}

func (r *CreateEmployeeRequest) Validate() error {
	err := validator.Struct(r)

	var errs validator.ValidationErrors
	if err != nil {
		var ok bool
		if errs, ok = err.(validator.ValidationErrors); !ok {
			return err
		}
	}

	if !validator.IsEmpty(r.PhoneNumber) && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 10-13 digits starting with 08, 62 or +62",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkTimesRequest struct {
	ID            string  `json:"-" validate:"required"`
	StartWorkTime *string `json:"start_work_time" validate:"omitempty,clock"`
	BreakTime     *string `json:"break_time" validate:"omitempty,clock"`
	EndWorkTime   *string `json:"end_work_time" validate:"omitempty,clock"`
}

func (r *UpdateWorkTimesRequest) Validate() error {
	return validator.Struct(r)
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	FullName         string  `json:"fullname"`
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	NIP              string  `json:"nip"`
	PhoneNumber      string  `json:"phone_number"`
	Address          *string `json:"address,omitempty"`
	Division         string  `json:"division"`
	DateOfBirth      *string `json:"tanggal_lahir,omitempty"`
	Shift            string  `json:"shift"`
	StartWorkTime    *string `json:"start_work_time,omitempty"`
	BreakTime        *string `json:"break_time,omitempty"`
	EndWorkTime      *string `json:"end_work_time,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
