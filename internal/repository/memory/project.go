package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
)

type projectRepository struct {
	store *Store
}

func NewProjectRepository(store *Store) project.ProjectRepository {
	return &projectRepository{store: store}
}

// clone detaches the member slice from the stored value.
func clone(p project.Project) project.Project {
	p.Members = slices.Clone(p.Members)
	return p
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	if err := checkCtx(ctx, "create project"); err != nil {
		return project.Project{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	newProject.CreatedAt = now
	newProject.UpdatedAt = now
	newProject = clone(newProject)

	r.store.projects[newProject.ID] = newProject
	r.store.journal(ctx, func() { delete(r.store.projects, newProject.ID) })

	return clone(newProject), nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	if err := checkCtx(ctx, "get project"); err != nil {
		return project.Project{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return clone(p), nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	return r.filter(ctx, func(project.Project) bool { return true })
}

// ListByEmployee implements project.ProjectRepository.
func (r *projectRepository) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	return r.filter(ctx, func(p project.Project) bool { return slices.Contains(p.Members, employeeID) })
}

// ListActive implements project.ProjectRepository.
func (r *projectRepository) ListActive(ctx context.Context, at time.Time) ([]project.Project, error) {
	return r.filter(ctx, func(p project.Project) bool { return p.IsActive(at) })
}

func (r *projectRepository) filter(ctx context.Context, keep func(project.Project) bool) ([]project.Project, error) {
	if err := checkCtx(ctx, "list projects"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var projects []project.Project
	for _, p := range r.store.projects {
		if keep(p) {
			projects = append(projects, clone(p))
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].StartDate.Before(projects[j].StartDate) })
	return projects, nil
}

// AddMember implements project.ProjectRepository.
func (r *projectRepository) AddMember(ctx context.Context, projectID string, employeeID string) error {
	return r.update(ctx, "add project member", projectID, func(p *project.Project) {
		if !slices.Contains(p.Members, employeeID) {
			p.Members = append(p.Members, employeeID)
		}
	})
}

// UpdateDates implements project.ProjectRepository.
func (r *projectRepository) UpdateDates(ctx context.Context, id string, startDate, endDate time.Time) error {
	return r.update(ctx, "update project dates", id, func(p *project.Project) {
		p.StartDate = startDate
		p.EndDate = endDate
	})
}

func (r *projectRepository) update(ctx context.Context, op, id string, mutate func(p *project.Project)) error {
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev, ok := r.store.projects[id]
	if !ok {
		return project.ErrProjectNotFound
	}

	updated := clone(prev)
	mutate(&updated)
	updated.UpdatedAt = r.store.now()

	r.store.projects[id] = updated
	r.store.journal(ctx, func() { r.store.projects[id] = prev })
	return nil
}
