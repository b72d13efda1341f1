package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (Employee, error)
	// Create returns ErrUsernameExists, ErrEmailExists or ErrNIPExists on a
	// uniqueness conflict.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	UpdateWorkTimes(ctx context.Context, id string, startWorkTime, breakTime, endWorkTime *string) error
	ListActive(ctx context.Context) ([]Employee, error)
}
