// Package memory keeps every repository in process memory. It backs local
// development (DB_DRIVER=memory) and the service tests.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
)

var ErrNoTransaction = errors.New("memory: lock requested outside a transaction")

type dayKey struct {
	employeeID string
	date       string
}

func newDayKey(employeeID string, date time.Time) dayKey {
	return dayKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

type Store struct {
	mu           sync.RWMutex
	employees    map[string]employee.Employee
	attendances  map[dayKey]attendance.Attendance
	presences    map[dayKey]attendance.Presence
	projects     map[string]project.Project
	activityLogs map[string]activitylog.ActivityLog

	locks *keyedMutex
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees:    make(map[string]employee.Employee),
		attendances:  make(map[dayKey]attendance.Attendance),
		presences:    make(map[dayKey]attendance.Presence),
		projects:     make(map[string]project.Project),
		activityLogs: make(map[string]activitylog.ActivityLog),
		locks:        newKeyedMutex(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// checkCtx mirrors a driver that gives up once the caller's deadline passes.
func checkCtx(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return database.Unavailable(op, err)
	}
	return nil
}

// ===== transactions =====

type txKey struct{}

type txState struct {
	mu      sync.Mutex
	undo    []func()
	unlocks []func()
}

func txFromContext(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txKey{}).(*txState)
	return st, ok
}

// journal registers how to revert a write made inside a transaction. The
// caller must hold s.mu.
func (s *Store) journal(ctx context.Context, undo func()) {
	if st, ok := txFromContext(ctx); ok {
		st.mu.Lock()
		st.undo = append(st.undo, undo)
		st.mu.Unlock()
	}
}

type transactor struct {
	store *Store
}

func NewTransactor(store *Store) database.Transactor {
	return &transactor{store: store}
}

// WithinTx implements database.Transactor. Writes are reverted when fn fails;
// day locks are held until fn returns.
func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	st := &txState{}
	err := fn(context.WithValue(ctx, txKey{}, st))

	if err != nil {
		t.store.mu.Lock()
		for i := len(st.undo) - 1; i >= 0; i-- {
			st.undo[i]()
		}
		t.store.mu.Unlock()
	}
	for i := len(st.unlocks) - 1; i >= 0; i-- {
		st.unlocks[i]()
	}
	return err
}

// ===== keyed lock =====

type keyLock struct {
	ch   chan struct{}
	refs int
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[dayKey]*keyLock
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[dayKey]*keyLock)}
}

func (k *keyedMutex) lock(ctx context.Context, key dayKey) (func(), error) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			k.release(key, l)
		}, nil
	case <-ctx.Done():
		k.release(key, l)
		return nil, ctx.Err()
	}
}

func (k *keyedMutex) release(key dayKey, l *keyLock) {
	k.mu.Lock()
	defer k.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
}
