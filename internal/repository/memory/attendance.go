package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	if err := checkCtx(ctx, "get attendance"); err != nil {
		return attendance.Attendance{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	record, ok := r.store.attendances[newDayKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

// LockDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) LockDay(ctx context.Context, employeeID string, date time.Time) error {
	st, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}

	unlock, err := r.store.locks.lock(ctx, newDayKey(employeeID, date))
	if err != nil {
		return database.Unavailable("lock attendance day", err)
	}

	st.mu.Lock()
	st.unlocks = append(st.unlocks, unlock)
	st.mu.Unlock()
	return nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	if err := checkCtx(ctx, "upsert attendance"); err != nil {
		return attendance.Attendance{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := newDayKey(record.EmployeeID, record.Date)
	prev, existed := r.store.attendances[key]

	now := r.store.now()
	if existed {
		record.CreatedAt = prev.CreatedAt
	} else {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	r.store.attendances[key] = record
	r.store.journal(ctx, func() {
		if existed {
			r.store.attendances[key] = prev
		} else {
			delete(r.store.attendances, key)
		}
	})

	return record, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	if err := checkCtx(ctx, "list attendance"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []attendance.Attendance
	for key, record := range r.store.attendances {
		if key.employeeID == employeeID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	if err := checkCtx(ctx, "list attendance"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day := date.Format("2006-01-02")
	var records []attendance.Attendance
	for key, record := range r.store.attendances {
		if key.date == day {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })
	return records, nil
}
