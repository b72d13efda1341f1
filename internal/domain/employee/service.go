package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee registers a new employee (admin only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateWorkTimes overrides the shift defaults of an employee (admin only)
	UpdateWorkTimes(ctx context.Context, req UpdateWorkTimesRequest) (EmployeeResponse, error)
}
