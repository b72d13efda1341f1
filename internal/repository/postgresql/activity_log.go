package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type activityLogRepository struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activitylog.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

const activityLogColumns = `id, employee_id, date, description, status, created_at, updated_at`

func scanActivityLog(row pgx.Row) (activitylog.ActivityLog, error) {
	var l activitylog.ActivityLog
	if err := row.Scan(&l.ID, &l.EmployeeID, &l.Date, &l.Description, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return activitylog.ActivityLog{}, err
	}
	l.Date, l.CreatedAt, l.UpdatedAt = l.Date.UTC(), l.CreatedAt.UTC(), l.UpdatedAt.UTC()
	return l, nil
}

// Create implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) Create(ctx context.Context, log activitylog.ActivityLog) (activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	created, err := scanActivityLog(q.QueryRow(ctx, `
		INSERT INTO activity_logs (id, employee_id, date, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+activityLogColumns,
		log.ID, log.EmployeeID, log.Date, log.Description, log.Status,
	))
	if err != nil {
		return activitylog.ActivityLog{}, storeError("create activity log", err)
	}
	return created, nil
}

// GetByID implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) GetByID(ctx context.Context, employeeID, id string) (activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanActivityLog(q.QueryRow(ctx,
		`SELECT `+activityLogColumns+` FROM activity_logs WHERE id = $1 AND employee_id = $2`,
		id, employeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activitylog.ActivityLog{}, activitylog.ErrActivityLogNotFound
		}
		return activitylog.ActivityLog{}, storeError("get activity log", err)
	}
	return l, nil
}

// Update implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) Update(ctx context.Context, log activitylog.ActivityLog) (activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	updated, err := scanActivityLog(q.QueryRow(ctx, `
		UPDATE activity_logs
		SET description = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND employee_id = $4
		RETURNING `+activityLogColumns,
		log.Description, log.Status, log.ID, log.EmployeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activitylog.ActivityLog{}, activitylog.ErrActivityLogNotFound
		}
		return activitylog.ActivityLog{}, storeError("update activity log", err)
	}
	return updated, nil
}

// ListByEmployee implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) ListByEmployee(ctx context.Context, employeeID string) ([]activitylog.ActivityLog, error) {
	return r.list(ctx, `SELECT `+activityLogColumns+` FROM activity_logs WHERE employee_id = $1 ORDER BY date`, employeeID)
}

// ListBetween implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) ListBetween(ctx context.Context, from, to time.Time) ([]activitylog.ActivityLog, error) {
	return r.list(ctx, `SELECT `+activityLogColumns+` FROM activity_logs WHERE date >= $1 AND date < $2 ORDER BY date`, from, to)
}

// ListAll implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) ListAll(ctx context.Context) ([]activitylog.ActivityLog, error) {
	return r.list(ctx, `SELECT `+activityLogColumns+` FROM activity_logs ORDER BY date`)
}

func (r *activityLogRepository) list(ctx context.Context, query string, args ...interface{}) ([]activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("list activity logs", err)
	}
	defer rows.Close()

	var logs []activitylog.ActivityLog
	for rows.Next() {
		l, err := scanActivityLog(rows)
		if err != nil {
			return nil, storeError("list activity logs", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("list activity logs", err)
	}

	return logs, nil
}
