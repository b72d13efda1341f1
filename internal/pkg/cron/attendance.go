package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
)

type AttendanceJobs struct {
	employeeRepo  employee.EmployeeRepository
	presenceRepo  attendance.PresenceRepository
	attendanceSvc attendance.AttendanceService
	loc           *time.Location
	storeTimeout  time.Duration
	now           func() time.Time
}

func NewAttendanceJobs(
	employeeRepo employee.EmployeeRepository,
	presenceRepo attendance.PresenceRepository,
	attendanceSvc attendance.AttendanceService,
	loc *time.Location,
	storeTimeout time.Duration,
) *AttendanceJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceJobs{
		employeeRepo:  employeeRepo,
		presenceRepo:  presenceRepo,
		attendanceSvc: attendanceSvc,
		loc:           loc,
		storeTimeout:  storeTimeout,
		now:           time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, absenceSchedule string) error {
	return scheduler.AddJob("mark_absent_employees", absenceSchedule, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees records yesterday as absent for every active employee
// that has no presence for it. Present and excused days are left alone.
// The whole run shares one store deadline.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	return database.WithTimeout(ctx, j.storeTimeout, "mark absent employees", j.markAbsent)
}

func (j *AttendanceJobs) markAbsent(ctx context.Context) error {
	day := attendance.DayOf(j.now(), j.loc).AddDate(0, 0, -1)

	slog.Info("Cron: Starting mark absent employees job", "date", day.Format("2006-01-02"))

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	markedCount := 0
	for _, emp := range employees {
		inserted, err := j.presenceRepo.InsertIfMissing(ctx, attendance.Presence{
			EmployeeID: emp.ID,
			Date:       day,
			Status:     attendance.PresenceAbsent,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("Cron: Failed to mark employee absent",
				"employee_id", emp.ID,
				"date", day.Format("2006-01-02"),
				"error", err)
			continue
		}
		if inserted {
			markedCount++
		}
	}

	counts, err := j.attendanceSvc.GetDayStatusCounts(ctx, day)
	switch {
	case errors.Is(err, attendance.ErrPresenceNotFound):
		slog.Info("Cron: No presence recorded", "date", day.Format("2006-01-02"))
	case err != nil:
		return fmt.Errorf("failed to count presence: %w", err)
	default:
		slog.Info("Cron: Mark absent employees job completed",
			"date", day.Format("2006-01-02"),
			"marked", markedCount,
			"present", counts.Present,
			"excused", counts.Excused,
			"absent", counts.Absent)
	}

	return nil
}
