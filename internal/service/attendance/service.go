package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	attendance.PresenceRepository
	employee.EmployeeRepository
	resolver schedule.ShiftResolver

	policy       debtPolicy
	loc          *time.Location
	storeTimeout time.Duration
	now          func() time.Time
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	presenceRepo attendance.PresenceRepository,
	employeeRepo employee.EmployeeRepository,
	resolver schedule.ShiftResolver,
	cfg config.AttendanceConfig,
	loc *time.Location,
	storeTimeout time.Duration,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		PresenceRepository:   presenceRepo,
		EmployeeRepository:   employeeRepo,
		resolver:             resolver,
		policy:               newDebtPolicy(cfg),
		loc:                  loc,
		storeTimeout:         storeTimeout,
		now:                  time.Now,
	}
}

// withStoreTimeout bounds every store interaction of one operation.
func (s *AttendanceServiceImpl) withStoreTimeout(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	return database.WithTimeout(ctx, s.storeTimeout, op, fn)
}

// ApplyCheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApplyCheckIn(ctx context.Context, employeeID string, event attendance.EventType, now time.Time) (attendance.Attendance, error) {
	if !validator.IsInSlice(string(event), attendance.EventTypeValues) {
		return attendance.Attendance{}, fmt.Errorf("%w: %q", attendance.ErrInvalidEventType, event)
	}

	// Stored instants round-trip at second precision.
	now = now.UTC().Truncate(time.Second)
	day := attendance.DayOf(now, s.loc)

	var result attendance.Attendance
	err := s.withStoreTimeout(ctx, "apply check-in", func(ctx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		windows, err := s.resolver.ResolveShiftWindows(emp.Shift, now.In(s.loc), emp.WorkTimeOverrides())
		if err != nil {
			return err
		}

		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.AttendanceRepository.LockDay(ctx, employeeID, day); err != nil {
				return fmt.Errorf("failed to lock attendance day: %w", err)
			}

			current, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
			if err != nil {
				if !errors.Is(err, attendance.ErrAttendanceNotFound) {
					return fmt.Errorf("failed to get attendance: %w", err)
				}
				current = attendance.Attendance{EmployeeID: employeeID, Date: day}
			}
			current.EmployeeName = emp.FullName

			next, err := applyEvent(current, event, now, windows, s.policy)
			if err != nil {
				return err
			}

			saved, err := s.AttendanceRepository.Upsert(ctx, next)
			if err != nil {
				return fmt.Errorf("failed to save attendance: %w", err)
			}

			if event == attendance.EventStart {
				err = s.PresenceRepository.Upsert(ctx, attendance.Presence{
					EmployeeID: employeeID,
					Date:       day,
					Status:     attendance.PresencePresent,
				})
				if err != nil {
					return fmt.Errorf("failed to save presence: %w", err)
				}
			}

			result = saved
			return nil
		})
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	return result, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.ApplyCheckIn(ctx, req.EmployeeID, attendance.EventType(req.Type), s.now())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.toResponse(record), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, employeeID string, date string) (attendance.AttendanceResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	var record attendance.Attendance
	err := s.withStoreTimeout(ctx, "get attendance", func(ctx context.Context) error {
		var err error
		record, err = s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.toResponse(record), nil
}

// GetShiftWindows implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetShiftWindows(ctx context.Context, employeeID string) (attendance.ShiftWindowsResponse, error) {
	nowLocal := s.now().In(s.loc)

	var emp employee.Employee
	err := s.withStoreTimeout(ctx, "get shift windows", func(ctx context.Context) error {
		var err error
		emp, err = s.EmployeeRepository.GetByID(ctx, employeeID)
		return err
	})
	if err != nil {
		return attendance.ShiftWindowsResponse{}, err
	}

	windows, err := s.resolver.ResolveShiftWindows(emp.Shift, nowLocal, emp.WorkTimeOverrides())
	if err != nil {
		return attendance.ShiftWindowsResponse{}, err
	}

	return attendance.ShiftWindowsResponse{
		EmployeeID: emp.ID,
		Shift:      string(emp.Shift),
		Date:       nowLocal.Format("2006-01-02"),
		Start:      windows.Start.Format(time.RFC3339),
		BreakStart: windows.BreakStart.Format(time.RFC3339),
		BreakEnd:   windows.BreakEnd.Format(time.RFC3339),
		End:        windows.End.Format(time.RFC3339),
	}, nil
}

// MarkExcused implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkExcused(ctx context.Context, req attendance.MarkExcusedRequest) (attendance.PresenceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PresenceResponse{}, err
	}
	day, _ := validator.IsValidDate(req.Date)

	err := s.withStoreTimeout(ctx, "mark excused", func(ctx context.Context) error {
		if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			// Same key lock as check-in so a concurrent start cannot slip in.
			if err := s.AttendanceRepository.LockDay(ctx, req.EmployeeID, day); err != nil {
				return fmt.Errorf("failed to lock attendance day: %w", err)
			}

			record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
			switch {
			case err == nil && record.Start != nil:
				return attendance.ErrAlreadyPresent
			case err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound):
				return fmt.Errorf("failed to get attendance: %w", err)
			}

			return s.PresenceRepository.Upsert(ctx, attendance.Presence{
				EmployeeID: req.EmployeeID,
				Date:       day,
				Status:     attendance.PresenceExcused,
			})
		})
	})
	if err != nil {
		return attendance.PresenceResponse{}, err
	}

	return attendance.PresenceResponse{
		EmployeeID: req.EmployeeID,
		Date:       day.Format("2006-01-02"),
		Status:     string(attendance.PresenceExcused),
	}, nil
}

// GetTotalDebt implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTotalDebt(ctx context.Context, employeeID string) (attendance.DebtSummaryResponse, error) {
	var records []attendance.Attendance
	err := s.withStoreTimeout(ctx, "get total debt", func(ctx context.Context) error {
		var err error
		records, err = s.AttendanceRepository.ListByEmployee(ctx, employeeID)
		return err
	})
	if err != nil {
		return attendance.DebtSummaryResponse{}, err
	}

	total, err := AggregateDebt(records)
	if err != nil {
		return attendance.DebtSummaryResponse{}, err
	}

	return attendance.DebtSummaryResponse{
		EmployeeID:       employeeID,
		Days:             len(records),
		TotalDebtMinutes: total,
		TotalDebtHours:   decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(60)).Round(2),
	}, nil
}

// GetDayStatusCounts implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDayStatusCounts(ctx context.Context, date time.Time) (attendance.StatusCounts, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var records []attendance.Presence
	err := s.withStoreTimeout(ctx, "get day status counts", func(ctx context.Context) error {
		var err error
		records, err = s.PresenceRepository.ListByDate(ctx, day)
		return err
	})
	if err != nil {
		return attendance.StatusCounts{}, err
	}

	return AggregateStatusCounts(records)
}

func (s *AttendanceServiceImpl) toResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		CheckInTimes: attendance.CheckInTimesResponse{
			Start:  s.timePtrToString(record.Start),
			Break:  s.timePtrToString(record.Break),
			Resume: s.timePtrToString(record.Resume),
			End:    s.timePtrToString(record.End),
		},
		TimeDebt:  record.TimeDebt,
		State:     string(record.State()),
		CreatedAt: record.CreatedAt.In(s.loc).Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.In(s.loc).Format(time.RFC3339),
	}
}

// timePtrToString formats an optional instant in the business timezone.
func (s *AttendanceServiceImpl) timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.In(s.loc).Format("2006-01-02 15:04:05")
	return &format
}
