package project

import "context"

// ProjectService defines business logic for project membership
type ProjectService interface {
	AddProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	ListProjects(ctx context.Context) ([]ProjectResponse, error)
	GetProject(ctx context.Context, id string) (ProjectResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ProjectResponse, error)
	// GetMembers resolves member names; unknown ids are reported as "Unknown"
	GetMembers(ctx context.Context, id string) ([]MemberResponse, error)
	ListActive(ctx context.Context) ([]ProjectResponse, error)
	AddMember(ctx context.Context, req AddMemberRequest) (ProjectResponse, error)
	EditDates(ctx context.Context, req EditDatesRequest) (ProjectResponse, error)
}
