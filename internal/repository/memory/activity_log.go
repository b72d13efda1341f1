package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
)

type activityLogRepository struct {
	store *Store
}

func NewActivityLogRepository(store *Store) activitylog.ActivityLogRepository {
	return &activityLogRepository{store: store}
}

// Create implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) Create(ctx context.Context, log activitylog.ActivityLog) (activitylog.ActivityLog, error) {
	if err := checkCtx(ctx, "create activity log"); err != nil {
		return activitylog.ActivityLog{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	log.CreatedAt = now
	log.UpdatedAt = now

	r.store.activityLogs[log.ID] = log
	r.store.journal(ctx, func() { delete(r.store.activityLogs, log.ID) })
	return log, nil
}

// GetByID implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) GetByID(ctx context.Context, employeeID, id string) (activitylog.ActivityLog, error) {
	if err := checkCtx(ctx, "get activity log"); err != nil {
		return activitylog.ActivityLog{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	log, ok := r.store.activityLogs[id]
	if !ok || log.EmployeeID != employeeID {
		return activitylog.ActivityLog{}, activitylog.ErrActivityLogNotFound
	}
	return log, nil
}

// Update implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) Update(ctx context.Context, log activitylog.ActivityLog) (activitylog.ActivityLog, error) {
	if err := checkCtx(ctx, "update activity log"); err != nil {
		return activitylog.ActivityLog{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev, ok := r.store.activityLogs[log.ID]
	if !ok || prev.EmployeeID != log.EmployeeID {
		return activitylog.ActivityLog{}, activitylog.ErrActivityLogNotFound
	}

	log.CreatedAt = prev.CreatedAt
	log.UpdatedAt = r.store.now()

	r.store.activityLogs[log.ID] = log
	r.store.journal(ctx, func() { r.store.activityLogs[log.ID] = prev })
	return log, nil
}

// ListByEmployee implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) ListByEmployee(ctx context.Context, employeeID string) ([]activitylog.ActivityLog, error) {
	return r.filter(ctx, func(l activitylog.ActivityLog) bool { return l.EmployeeID == employeeID })
}

// ListBetween implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) ListBetween(ctx context.Context, from, to time.Time) ([]activitylog.ActivityLog, error) {
	return r.filter(ctx, func(l activitylog.ActivityLog) bool {
		return !l.Date.Before(from) && l.Date.Before(to)
	})
}

// ListAll implements activitylog.ActivityLogRepository.
func (r *activityLogRepository) ListAll(ctx context.Context) ([]activitylog.ActivityLog, error) {
	return r.filter(ctx, func(activitylog.ActivityLog) bool { return true })
}

func (r *activityLogRepository) filter(ctx context.Context, keep func(activitylog.ActivityLog) bool) ([]activitylog.ActivityLog, error) {
	if err := checkCtx(ctx, "list activity logs"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var logs []activitylog.ActivityLog
	for _, l := range r.store.activityLogs {
		if keep(l) {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	return logs, nil
}
