package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func TestWithinTx_RevertsWritesOnError(t *testing.T) {
	store := NewStore()
	tx := NewTransactor(store)
	attendanceRepo := NewAttendanceRepository(store)
	presenceRepo := NewPresenceRepository(store)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := attendanceRepo.Upsert(ctx, attendance.Attendance{EmployeeID: "emp-1", Date: testDay, TimeDebt: 5})
		require.NoError(t, err)
		require.NoError(t, presenceRepo.Upsert(ctx, attendance.Presence{
			EmployeeID: "emp-1", Date: testDay, Status: attendance.PresencePresent,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = attendanceRepo.GetByEmployeeAndDate(ctx, "emp-1", testDay)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	_, err = presenceRepo.GetByEmployeeAndDate(ctx, "emp-1", testDay)
	assert.ErrorIs(t, err, attendance.ErrPresenceNotFound)
}

func TestWithinTx_RestoresPreviousValue(t *testing.T) {
	store := NewStore()
	tx := NewTransactor(store)
	repo := NewAttendanceRepository(store)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: "emp-1", Date: testDay, TimeDebt: 10})
	require.NoError(t, err)

	_ = tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: "emp-1", Date: testDay, TimeDebt: 99})
		require.NoError(t, err)
		return errors.New("abort")
	})

	got, err := repo.GetByEmployeeAndDate(ctx, "emp-1", testDay)
	require.NoError(t, err)
	assert.Equal(t, 10, got.TimeDebt)
}

func TestLockDay_RequiresTransaction(t *testing.T) {
	repo := NewAttendanceRepository(NewStore())
	err := repo.LockDay(context.Background(), "emp-1", testDay)
	assert.ErrorIs(t, err, ErrNoTransaction)
}

func TestLockDay_SerialisesSameKey(t *testing.T) {
	store := NewStore()
	tx := NewTransactor(store)
	repo := NewAttendanceRepository(store)
	ctx := context.Background()

	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.WithinTx(ctx, func(ctx context.Context) error {
				if err := repo.LockDay(ctx, "emp-1", testDay); err != nil {
					return err
				}
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Empty(t, store.locks.locks)
}

func TestLockDay_TimesOutAsStoreUnavailable(t *testing.T) {
	store := NewStore()
	tx := NewTransactor(store)
	repo := NewAttendanceRepository(store)

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = tx.WithinTx(context.Background(), func(ctx context.Context) error {
			assert.NoError(t, repo.LockDay(ctx, "emp-1", testDay))
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		return repo.LockDay(ctx, "emp-1", testDay)
	})
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)

	// Other keys are unaffected.
	err = tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.LockDay(ctx, "emp-2", testDay)
	})
	assert.NoError(t, err)
}

func TestRepositories_ExpiredContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmployeeRepository(store).GetByID(ctx, "emp-1")
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)

	_, err = NewAttendanceRepository(store).ListByEmployee(ctx, "emp-1")
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}

func TestPresence_InsertIfMissingKeepsExisting(t *testing.T) {
	repo := NewPresenceRepository(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, attendance.Presence{EmployeeID: "emp-1", Date: testDay, Status: attendance.PresenceExcused}))

	inserted, err := repo.InsertIfMissing(ctx, attendance.Presence{EmployeeID: "emp-1", Date: testDay, Status: attendance.PresenceAbsent})
	require.NoError(t, err)
	assert.False(t, inserted)

	inserted, err = repo.InsertIfMissing(ctx, attendance.Presence{EmployeeID: "emp-2", Date: testDay, Status: attendance.PresenceAbsent})
	require.NoError(t, err)
	assert.True(t, inserted)

	got, err := repo.ListByDate(ctx, testDay)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, attendance.PresenceExcused, got[0].Status)
	assert.Equal(t, attendance.PresenceAbsent, got[1].Status)
}

func TestEmployee_CreateConflicts(t *testing.T) {
	repo := NewEmployeeRepository(NewStore())
	ctx := context.Background()

	base := employee.Employee{ID: "emp-1", Username: "budi", Email: "budi@example.com", NIP: "123"}
	created, err := repo.Create(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, employee.EmploymentStatusActive, created.EmploymentStatus)

	_, err = repo.Create(ctx, employee.Employee{ID: "emp-2", Username: "budi", Email: "x@example.com", NIP: "9"})
	assert.ErrorIs(t, err, employee.ErrUsernameExists)
	_, err = repo.Create(ctx, employee.Employee{ID: "emp-2", Username: "ani", Email: "budi@example.com", NIP: "9"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
	_, err = repo.Create(ctx, employee.Employee{ID: "emp-2", Username: "ani", Email: "ani@example.com", NIP: "123"})
	assert.ErrorIs(t, err, employee.ErrNIPExists)
}

func TestProject_AddMemberIsSetLike(t *testing.T) {
	repo := NewProjectRepository(NewStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, project.Project{ID: "p-1", Name: "HRIS", StartDate: testDay, EndDate: testDay.AddDate(0, 1, 0)})
	require.NoError(t, err)

	require.NoError(t, repo.AddMember(ctx, "p-1", "emp-1"))
	require.NoError(t, repo.AddMember(ctx, "p-1", "emp-1"))

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"emp-1"}, got.Members)

	assert.ErrorIs(t, repo.AddMember(ctx, "missing", "emp-1"), project.ErrProjectNotFound)
}
