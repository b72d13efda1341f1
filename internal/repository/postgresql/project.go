package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepository struct {
	db *database.DB
	tx database.Transactor
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db, tx: NewTransactor(db)}
}

// Members are aggregated in insertion order.
const projectSelect = `
	SELECT p.id, p.name, p.description, p.start_date, p.end_date, p.created_at, p.updated_at,
		COALESCE(
			array_agg(m.employee_id ORDER BY m.position) FILTER (WHERE m.employee_id IS NOT NULL),
			'{}'
		) AS members
	FROM projects p
	LEFT JOIN project_members m ON m.project_id = p.id
`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt, &p.Members)
	if err != nil {
		return project.Project{}, err
	}
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return p, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		_, err := q.Exec(ctx, `
			INSERT INTO projects (id, name, description, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5)
		`, newProject.ID, newProject.Name, newProject.Description, newProject.StartDate, newProject.EndDate)
		if err != nil {
			return storeError("create project", err)
		}

		for _, employeeID := range newProject.Members {
			if err := insertMember(ctx, q, newProject.ID, employeeID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return project.Project{}, err
	}

	return r.GetByID(ctx, newProject.ID)
}

func insertMember(ctx context.Context, q database.Querier, projectID, employeeID string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO project_members (project_id, employee_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, employee_id) DO NOTHING
	`, projectID, employeeID)
	if err != nil {
		return storeError("add project member", err)
	}
	return nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, projectSelect+` WHERE p.id = $1 GROUP BY p.id`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, storeError("get project", err)
	}
	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	return r.list(ctx, projectSelect+` GROUP BY p.id ORDER BY p.start_date`)
}

// ListByEmployee implements project.ProjectRepository.
func (r *projectRepository) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	return r.list(ctx, projectSelect+`
		WHERE p.id IN (SELECT project_id FROM project_members WHERE employee_id = $1)
		GROUP BY p.id ORDER BY p.start_date`, employeeID)
}

// ListActive implements project.ProjectRepository.
func (r *projectRepository) ListActive(ctx context.Context, at time.Time) ([]project.Project, error) {
	return r.list(ctx, projectSelect+`
		WHERE p.start_date <= $1 AND p.end_date >= $1
		GROUP BY p.id ORDER BY p.start_date`, at)
}

func (r *projectRepository) list(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list projects", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, storeError("list projects", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("list projects", err)
	}

	return projects, nil
}

// AddMember implements project.ProjectRepository.
func (r *projectRepository) AddMember(ctx context.Context, projectID string, employeeID string) error {
	return r.tx.WithinTx(ctx, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		tag, err := q.Exec(ctx, `UPDATE projects SET updated_at = NOW() WHERE id = $1`, projectID)
		if err != nil {
			return storeError("add project member", err)
		}
		if tag.RowsAffected() == 0 {
			return project.ErrProjectNotFound
		}

		return insertMember(ctx, q, projectID, employeeID)
	})
}

// UpdateDates implements project.ProjectRepository.
func (r *projectRepository) UpdateDates(ctx context.Context, id string, startDate, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE projects SET start_date = $1, end_date = $2, updated_at = NOW()
		WHERE id = $3
	`, startDate, endDate, id)
	if err != nil {
		return storeError("update project dates", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
