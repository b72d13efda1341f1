package project

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string   `json:"projectname" validate:"required,max=150"`
	Description string   `json:"description"`
	Members     []string `json:"members" validate:"omitempty,unique,dive,required"`
	StartDate   string   `json:"startdate" validate:"required,date"`
	EndDate     string   `json:"enddate" validate:"required,date"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	return validateRange(r.StartDate, r.EndDate)
}

type AddMemberRequest struct {
	ProjectID  string `json:"-" validate:"required"`
	EmployeeID string `json:"karyawan_id" validate:"required"`
}

func (r *AddMemberRequest) Validate() error {
	return validator.Struct(r)
}

type EditDatesRequest struct {
	ProjectID string `json:"-" validate:"required"`
	StartDate string `json:"startdate" validate:"required,date"`
	EndDate   string `json:"enddate" validate:"required,date"`
}

func (r *EditDatesRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	return validateRange(r.StartDate, r.EndDate)
}

func validateRange(start, end string) error {
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)
	if startDate.After(endDate) {
		return validator.ValidationErrors{{
			Field:   "enddate",
			Message: ErrInvalidDateRange.Error(),
		}}
	}
	return nil
}

type ProjectResponse struct {
	ID          string   `json:"project_id"`
	Name        string   `json:"projectname"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	StartDate   string   `json:"startdate"`
	EndDate     string   `json:"enddate"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type MemberResponse struct {
	EmployeeID string `json:"karyawan_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}
