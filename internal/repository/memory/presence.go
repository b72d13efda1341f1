package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
)

type presenceRepository struct {
	store *Store
}

func NewPresenceRepository(store *Store) attendance.PresenceRepository {
	return &presenceRepository{store: store}
}

// GetByEmployeeAndDate implements attendance.PresenceRepository.
func (r *presenceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Presence, error) {
	if err := checkCtx(ctx, "get presence"); err != nil {
		return attendance.Presence{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.presences[newDayKey(employeeID, date)]
	if !ok {
		return attendance.Presence{}, attendance.ErrPresenceNotFound
	}
	return p, nil
}

// Upsert implements attendance.PresenceRepository.
func (r *presenceRepository) Upsert(ctx context.Context, presence attendance.Presence) error {
	if err := checkCtx(ctx, "upsert presence"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.put(ctx, presence)
	return nil
}

// InsertIfMissing implements attendance.PresenceRepository.
func (r *presenceRepository) InsertIfMissing(ctx context.Context, presence attendance.Presence) (bool, error) {
	if err := checkCtx(ctx, "insert presence"); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.presences[newDayKey(presence.EmployeeID, presence.Date)]; ok {
		return false, nil
	}
	r.put(ctx, presence)
	return true, nil
}

// put writes presence; the caller holds the store lock.
func (r *presenceRepository) put(ctx context.Context, presence attendance.Presence) {
	key := newDayKey(presence.EmployeeID, presence.Date)
	prev, existed := r.store.presences[key]

	presence.UpdatedAt = r.store.now()
	r.store.presences[key] = presence
	r.store.journal(ctx, func() {
		if existed {
			r.store.presences[key] = prev
		} else {
			delete(r.store.presences, key)
		}
	})
}

// ListByDate implements attendance.PresenceRepository.
func (r *presenceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Presence, error) {
	if err := checkCtx(ctx, "list presence"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day := date.Format("2006-01-02")
	var records []attendance.Presence
	for key, p := range r.store.presences {
		if key.date == day {
			records = append(records, p)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })
	return records, nil
}
