package activitylog

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *ActivityLogServiceImpl {
	t.Helper()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	_, err := employeeRepo.Create(context.Background(), employee.Employee{
		ID: "emp-1", FullName: "Budi Santoso", Username: "budi", Email: "budi@example.com", NIP: "1",
	})
	require.NoError(t, err)

	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	return NewActivityLogService(memory.NewActivityLogRepository(store), employeeRepo, loc, time.Second).(*ActivityLogServiceImpl)
}

func TestActivityLogService_AddAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ListByEmployee(ctx, "emp-1")
	assert.ErrorIs(t, err, activitylog.ErrNoActivityLogs)

	created, err := svc.Add(ctx, activitylog.AddActivityLogRequest{EmployeeID: "emp-1", Description: "Reviewed payroll export"})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, uuid.Version(7), uuid.MustParse(created.ID).Version())

	logs, err := svc.ListByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, []activitylog.ActivityLogResponse{created}, logs)

	_, err = svc.Add(ctx, activitylog.AddActivityLogRequest{EmployeeID: "ghost", Description: "x"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Add(ctx, activitylog.AddActivityLogRequest{EmployeeID: "emp-1"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestActivityLogService_EditAcceptReject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, activitylog.AddActivityLogRequest{EmployeeID: "emp-1", Description: "Draft"})
	require.NoError(t, err)

	desc := "Final"
	edited, err := svc.Edit(ctx, activitylog.EditActivityLogRequest{EmployeeID: "emp-1", ID: created.ID, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Final", edited.Description)
	assert.Equal(t, "pending", edited.Status)

	accepted, err := svc.Accept(ctx, "emp-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)

	rejected, err := svc.Reject(ctx, "emp-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)

	_, err = svc.Accept(ctx, "emp-2", created.ID)
	assert.ErrorIs(t, err, activitylog.ErrActivityLogNotFound)

	_, err = svc.Edit(ctx, activitylog.EditActivityLogRequest{EmployeeID: "emp-1", ID: created.ID})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	bogus := "archived"
	_, err = svc.Edit(ctx, activitylog.EditActivityLogRequest{EmployeeID: "emp-1", ID: created.ID, Status: &bogus})
	assert.ErrorAs(t, err, &verrs)
}

func TestActivityLogService_ListByDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// 23:30 in Jakarta is still the same business day, although it is 16:30 UTC.
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 16, 30, 0, 0, time.UTC) }
	_, err := svc.Add(ctx, activitylog.AddActivityLogRequest{EmployeeID: "emp-1", Description: "Late work"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC) }
	_, err = svc.Add(ctx, activitylog.AddActivityLogRequest{EmployeeID: "emp-1", Description: "Next day"})
	require.NoError(t, err)

	logs, err := svc.ListByDate(ctx, "2024-03-04")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Late work", logs[0].Description)

	_, err = svc.ListByDate(ctx, "2024-03-06")
	assert.ErrorIs(t, err, activitylog.ErrNoActivityLogs)

	_, err = svc.ListByDate(ctx, "March 4")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

type stalledActivityLogRepo struct {
	activitylog.ActivityLogRepository
}

func (stalledActivityLogRepo) ListAll(ctx context.Context) ([]activitylog.ActivityLog, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestActivityLogService_ListAllStoreTimeout(t *testing.T) {
	svc := newTestService(t)
	svc.activityLogRepo = stalledActivityLogRepo{svc.activityLogRepo}
	svc.storeTimeout = 20 * time.Millisecond

	_, err := svc.ListAll(context.Background())
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
