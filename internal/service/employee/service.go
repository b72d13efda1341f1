package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	resolver     schedule.ShiftResolver
	storeTimeout time.Duration
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, resolver schedule.ShiftResolver, storeTimeout time.Duration) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		resolver:     resolver,
		storeTimeout: storeTimeout,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	var emp employee.Employee
	err := database.WithTimeout(ctx, s.storeTimeout, "get employee", func(ctx context.Context) error {
		var err error
		emp, err = s.employeeRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		dob = &parsed
	}

	newEmployee := employee.Employee{
		ID:               id.String(),
		FullName:         strings.TrimSpace(req.FullName),
		Username:         strings.ToLower(strings.TrimSpace(req.Username)),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		NIP:              req.NIP,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		Division:         req.Division,
		DateOfBirth:      dob,
		Shift:            schedule.Shift(req.Shift),
		StartWorkTime:    req.StartWorkTime,
		BreakTime:        req.BreakTime,
		EndWorkTime:      req.EndWorkTime,
		EmploymentStatus: employee.EmploymentStatusActive,
	}

	// Reject combinations the resolver cannot turn into a shift.
	if _, err := s.resolver.ResolveShiftWindows(newEmployee.Shift, time.Now(), newEmployee.WorkTimeOverrides()); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err = database.WithTimeout(ctx, s.storeTimeout, "create employee", func(ctx context.Context) error {
		var err error
		created, err = s.employeeRepo.Create(ctx, newEmployee)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "shift", created.Shift)
	return mapEmployeeToResponse(created), nil
}

// UpdateWorkTimes implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateWorkTimes(ctx context.Context, req employee.UpdateWorkTimesRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	err := database.WithTimeout(ctx, s.storeTimeout, "update work times", func(ctx context.Context) error {
		return s.employeeRepo.UpdateWorkTimes(ctx, req.ID, emptyToNil(req.StartWorkTime), emptyToNil(req.BreakTime), emptyToNil(req.EndWorkTime))
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update work times: %w", err)
	}

	return s.GetEmployee(ctx, req.ID)
}

// emptyToNil lets an administrator clear an override with "".
func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var dob *string
	if emp.DateOfBirth != nil {
		formatted := emp.DateOfBirth.Format("2006-01-02")
		dob = &formatted
	}

	return employee.EmployeeResponse{
		ID:               emp.ID,
		FullName:         emp.FullName,
		Username:         emp.Username,
		Email:            emp.Email,
		NIP:              emp.NIP,
		PhoneNumber:      emp.PhoneNumber,
		Address:          emp.Address,
		Division:         emp.Division,
		DateOfBirth:      dob,
		Shift:            string(emp.Shift),
		StartWorkTime:    emp.StartWorkTime,
		BreakTime:        emp.BreakTime,
		EndWorkTime:      emp.EndWorkTime,
		EmploymentStatus: string(emp.EmploymentStatus),
		CreatedAt:        emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        emp.UpdatedAt.Format(time.RFC3339),
	}
}
