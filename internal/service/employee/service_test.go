package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/memory"
	schedulesvc "github.com/cmlabs-hris/timesheet-backend-go/internal/service/schedule"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) employee.EmployeeService {
	t.Helper()
	templates, err := schedulesvc.TemplatesFromConfig(config.ShiftConfig{
		Pagi:  config.ShiftTimes{Start: "09:00", BreakStart: "13:00", BreakEnd: "14:00", End: "17:00"},
		Siang: config.ShiftTimes{Start: "13:00", BreakStart: "17:00", BreakEnd: "18:00", End: "21:00"},
	})
	require.NoError(t, err)

	return NewEmployeeService(
		memory.NewEmployeeRepository(memory.NewStore()),
		schedulesvc.NewShiftResolver(templates, time.Hour, time.UTC),
		time.Second,
	)
}

func validCreateRequest() employee.CreateEmployeeRequest {
	dob := "1995-08-17"
	return employee.CreateEmployeeRequest{
		FullName:    "Budi Santoso",
		Username:    "Budi",
		Email:       "Budi@Example.com",
		NIP:         "198701012020",
		PhoneNumber: "081234567890",
		Division:    "Engineering",
		Shift:       "pagi",
		DateOfBirth: &dob,
	}
}

func TestEmployeeService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(7), uuid.MustParse(created.ID).Version())
	assert.Equal(t, "budi", created.Username)
	assert.Equal(t, "budi@example.com", created.Email)
	assert.Equal(t, "pagi", created.Shift)
	assert.Equal(t, "active", created.EmploymentStatus)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "1995-08-17", *created.DateOfBirth)

	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestEmployeeService_CreateValidation(t *testing.T) {
	svc := newTestService(t)

	req := validCreateRequest()
	req.Shift = "malam"
	req.PhoneNumber = "12345"

	_, err := svc.CreateEmployee(context.Background(), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "shift")
	assert.Contains(t, fields, "phone_number")
}

func TestEmployeeService_CreateDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.Email = "other@example.com"
	req.NIP = "1"
	_, err = svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrUsernameExists)
}

func TestEmployeeService_UpdateWorkTimes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	start, empty := "08:00", ""
	updated, err := svc.UpdateWorkTimes(ctx, employee.UpdateWorkTimesRequest{
		ID:            created.ID,
		StartWorkTime: &start,
		EndWorkTime:   &empty,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.StartWorkTime)
	assert.Equal(t, "08:00", *updated.StartWorkTime)
	assert.Nil(t, updated.EndWorkTime)

	bad := "8am"
	_, err = svc.UpdateWorkTimes(ctx, employee.UpdateWorkTimesRequest{ID: created.ID, BreakTime: &bad})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.UpdateWorkTimes(ctx, employee.UpdateWorkTimesRequest{ID: "missing", StartWorkTime: &start})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_GetMissing(t *testing.T) {
	_, err := newTestService(t).GetEmployee(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

type stalledEmployeeRepo struct {
	employee.EmployeeRepository
}

func (stalledEmployeeRepo) GetByID(ctx context.Context, _ string) (employee.Employee, error) {
	<-ctx.Done()
	return employee.Employee{}, ctx.Err()
}

func TestEmployeeService_GetStoreTimeout(t *testing.T) {
	svc := NewEmployeeService(stalledEmployeeRepo{}, nil, 20*time.Millisecond)

	_, err := svc.GetEmployee(context.Background(), "emp-1")
	assert.ErrorIs(t, err, database.ErrStoreUnavailable)
}
