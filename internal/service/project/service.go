package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const unknownMember = "Unknown"

// memberLookupLimit caps concurrent employee lookups per request.
const memberLookupLimit = 8

type ProjectServiceImpl struct {
	projectRepo  project.ProjectRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
	storeTimeout time.Duration
	now          func() time.Time
}

func NewProjectService(projectRepo project.ProjectRepository, employeeRepo employee.EmployeeRepository, loc *time.Location, storeTimeout time.Duration) project.ProjectService {
	if loc == nil {
		loc = time.UTC
	}
	return &ProjectServiceImpl{
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
		storeTimeout: storeTimeout,
		now:          time.Now,
	}
}

func (s *ProjectServiceImpl) withStoreTimeout(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	return database.WithTimeout(ctx, s.storeTimeout, op, fn)
}

// AddProject implements project.ProjectService.
func (s *ProjectServiceImpl) AddProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to generate project id: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	members := req.Members
	if members == nil {
		members = []string{}
	}

	var created project.Project
	err = s.withStoreTimeout(ctx, "create project", func(ctx context.Context) error {
		var err error
		created, err = s.projectRepo.Create(ctx, project.Project{
			ID:          id.String(),
			Name:        req.Name,
			Description: req.Description,
			Members:     members,
			StartDate:   startDate,
			EndDate:     endDate,
		})
		return err
	})
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("Project created", "project_id", created.ID, "members", len(created.Members))
	return mapProjectToResponse(created), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	var projects []project.Project
	err := s.withStoreTimeout(ctx, "list projects", func(ctx context.Context) error {
		var err error
		projects, err = s.projectRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return mapProjectsToResponse(projects), nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	var p project.Project
	err := s.withStoreTimeout(ctx, "get project", func(ctx context.Context) error {
		var err error
		p, err = s.projectRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return mapProjectToResponse(p), nil
}

// ListByEmployee implements project.ProjectService.
func (s *ProjectServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]project.ProjectResponse, error) {
	var projects []project.Project
	err := s.withStoreTimeout(ctx, "list projects by employee", func(ctx context.Context) error {
		var err error
		projects, err = s.projectRepo.ListByEmployee(ctx, employeeID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by employee: %w", err)
	}
	return mapProjectsToResponse(projects), nil
}

// GetMembers implements project.ProjectService.
func (s *ProjectServiceImpl) GetMembers(ctx context.Context, id string) ([]project.MemberResponse, error) {
	var members []project.MemberResponse
	err := s.withStoreTimeout(ctx, "get project members", func(ctx context.Context) error {
		p, err := s.projectRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		members = make([]project.MemberResponse, len(p.Members))

		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(memberLookupLimit)

		for i, memberID := range p.Members {
			i, memberID := i, memberID
			g.Go(func() error {
				emp, err := s.employeeRepo.GetByID(gCtx, memberID)
				if err != nil {
					if errors.Is(err, employee.ErrEmployeeNotFound) {
						members[i] = project.MemberResponse{EmployeeID: memberID, Name: unknownMember, Role: unknownMember}
						return nil
					}
					return fmt.Errorf("failed to get member %s: %w", memberID, err)
				}
				members[i] = project.MemberResponse{EmployeeID: memberID, Name: emp.FullName, Role: emp.Division}
				return nil
			})
		}

		return g.Wait()
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}

// ListActive implements project.ProjectService.
func (s *ProjectServiceImpl) ListActive(ctx context.Context) ([]project.ProjectResponse, error) {
	today := attendance.DayOf(s.now(), s.loc)

	var projects []project.Project
	err := s.withStoreTimeout(ctx, "list active projects", func(ctx context.Context) error {
		var err error
		projects, err = s.projectRepo.ListActive(ctx, today)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active projects: %w", err)
	}
	return mapProjectsToResponse(projects), nil
}

// AddMember implements project.ProjectService.
func (s *ProjectServiceImpl) AddMember(ctx context.Context, req project.AddMemberRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	err := s.withStoreTimeout(ctx, "add project member", func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		return s.projectRepo.AddMember(ctx, req.ProjectID, req.EmployeeID)
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return s.GetProject(ctx, req.ProjectID)
}

// EditDates implements project.ProjectService.
func (s *ProjectServiceImpl) EditDates(ctx context.Context, req project.EditDatesRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	err := s.withStoreTimeout(ctx, "update project dates", func(ctx context.Context) error {
		return s.projectRepo.UpdateDates(ctx, req.ProjectID, startDate, endDate)
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return s.GetProject(ctx, req.ProjectID)
}

func mapProjectsToResponse(projects []project.Project) []project.ProjectResponse {
	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, mapProjectToResponse(p))
	}
	return responses
}

func mapProjectToResponse(p project.Project) project.ProjectResponse {
	members := p.Members
	if members == nil {
		members = []string{}
	}
	return project.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Members:     members,
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
