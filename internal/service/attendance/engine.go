package attendance

import (
	"math"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/schedule"
)

// debtPolicy holds the configurable time-debt rules.
type debtPolicy struct {
	requiredWorkMinutes   int
	breakAllowanceMinutes int
	enforceShiftEnd       bool
}

func newDebtPolicy(cfg config.AttendanceConfig) debtPolicy {
	return debtPolicy{
		requiredWorkMinutes:   cfg.RequiredWorkMinutes,
		breakAllowanceMinutes: cfg.BreakAllowanceMinutes,
		enforceShiftEnd:       cfg.EnforceShiftEnd,
	}
}

// applyEvent computes the record that results from event at now. It never
// mutates rec and returns it untouched on error, so callers can validate
// before writing anything.
func applyEvent(rec attendance.Attendance, event attendance.EventType, now time.Time, windows schedule.ShiftWindows, policy debtPolicy) (attendance.Attendance, error) {
	next := rec

	switch event {
	case attendance.EventStart:
		// Lateness is charged once per day; a repeated start only moves the timestamp.
		if rec.Start == nil {
			if late := floorMinutes(now.Sub(windows.Start)); late > 0 {
				next.TimeDebt += late
			}
		}
		next.Start = &now

	case attendance.EventBreak:
		next.Break = &now

	case attendance.EventResume:
		if rec.Start == nil || rec.Break == nil {
			return rec, attendance.ErrMissingPriorEvent
		}
		// The long-break excess is charged by the first resume only.
		if rec.Resume == nil {
			if excess := floorMinutes(now.Sub(*rec.Break)) - policy.breakAllowanceMinutes; excess > 0 {
				next.TimeDebt += excess
			}
		}
		next.Resume = &now

	case attendance.EventEnd:
		if rec.Start == nil {
			return rec, attendance.ErrMissingPriorEvent
		}
		if policy.enforceShiftEnd {
			boundary := windows.End.Add(-time.Duration(rec.TimeDebt) * time.Minute)
			if now.Before(boundary) {
				return rec, attendance.ErrPrematureEnd
			}
		}
		// The short-day deficit is charged by the first end only.
		if rec.End == nil {
			worked := floorMinutes(now.Sub(*rec.Start))
			if deficit := policy.requiredWorkMinutes - worked; deficit > 0 {
				next.TimeDebt += deficit
			}
		}
		next.End = &now

	default:
		return rec, attendance.ErrInvalidEventType
	}

	return next, nil
}

func floorMinutes(d time.Duration) int {
	return int(math.Floor(d.Minutes()))
}
