package project

import (
	"context"
	"time"
)

type ProjectRepository interface {
	Create(ctx context.Context, newProject Project) (Project, error)
	// GetByID returns ErrProjectNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Project, error)
	ListActive(ctx context.Context, at time.Time) ([]Project, error)
	// AddMember is a no-op when the employee already is a member.
	AddMember(ctx context.Context, projectID string, employeeID string) error
	UpdateDates(ctx context.Context, id string, startDate, endDate time.Time) error
}
