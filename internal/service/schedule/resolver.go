package schedule

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/schedule"
)

const clockLayout = "15:04"

type ShiftResolverImpl struct {
	templates      map[schedule.Shift]schedule.ShiftTemplate
	breakAllowance time.Duration
	loc            *time.Location
}

// ResolveShiftWindows implements schedule.ShiftResolver.
func (r *ShiftResolverImpl) ResolveShiftWindows(shift schedule.Shift, date time.Time, overrides *schedule.WorkTimeOverrides) (schedule.ShiftWindows, error) {
	tmpl, ok := r.templates[shift]
	if !ok {
		return schedule.ShiftWindows{}, fmt.Errorf("%w: %q", schedule.ErrInvalidShift, shift)
	}

	start, breakStart, breakEnd, end := tmpl.Start, tmpl.BreakStart, tmpl.BreakEnd, tmpl.End

	if overrides != nil {
		if overrides.StartWorkTime != nil {
			t, err := parseClock(*overrides.StartWorkTime)
			if err != nil {
				return schedule.ShiftWindows{}, invalidOverride(err)
			}
			start = t
		}
		if overrides.BreakTime != nil {
			t, err := parseClock(*overrides.BreakTime)
			if err != nil {
				return schedule.ShiftWindows{}, invalidOverride(err)
			}
			breakStart = t
			breakEnd = t.Add(r.breakAllowance)
		}
		if overrides.EndWorkTime != nil {
			t, err := parseClock(*overrides.EndWorkTime)
			if err != nil {
				return schedule.ShiftWindows{}, invalidOverride(err)
			}
			end = t
		}
	}

	return schedule.ShiftWindows{
		Start:      r.onDate(date, start),
		BreakStart: r.onDate(date, breakStart),
		BreakEnd:   r.onDate(date, breakEnd),
		End:        r.onDate(date, end),
	}, nil
}

// onDate places the wall clock of clock on the calendar day of date.
func (r *ShiftResolverImpl) onDate(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		r.loc,
	)
}

func parseClock(value string) (time.Time, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", schedule.ErrInvalidWorkTime, value)
	}
	return t, nil
}

// invalidOverride reports a malformed override as an invalid shift so that
// nothing is written for the event.
func invalidOverride(err error) error {
	return fmt.Errorf("%w: %w", schedule.ErrInvalidShift, err)
}

// TemplatesFromConfig parses the configured shift tables.
func TemplatesFromConfig(cfg config.ShiftConfig) (map[schedule.Shift]schedule.ShiftTemplate, error) {
	templates := make(map[schedule.Shift]schedule.ShiftTemplate, 2)

	for shift, times := range map[schedule.Shift]config.ShiftTimes{
		schedule.ShiftPagi:  cfg.Pagi,
		schedule.ShiftSiang: cfg.Siang,
	} {
		var tmpl schedule.ShiftTemplate
		var err error
		if tmpl.Start, err = parseClock(times.Start); err != nil {
			return nil, fmt.Errorf("shift %s start: %w", shift, err)
		}
		if tmpl.BreakStart, err = parseClock(times.BreakStart); err != nil {
			return nil, fmt.Errorf("shift %s break start: %w", shift, err)
		}
		if tmpl.BreakEnd, err = parseClock(times.BreakEnd); err != nil {
			return nil, fmt.Errorf("shift %s break end: %w", shift, err)
		}
		if tmpl.End, err = parseClock(times.End); err != nil {
			return nil, fmt.Errorf("shift %s end: %w", shift, err)
		}
		templates[shift] = tmpl
	}

	return templates, nil
}

func NewShiftResolver(templates map[schedule.Shift]schedule.ShiftTemplate, breakAllowance time.Duration, loc *time.Location) schedule.ShiftResolver {
	if loc == nil {
		loc = time.UTC
	}
	return &ShiftResolverImpl{
		templates:      templates,
		breakAllowance: breakAllowance,
		loc:            loc,
	}
}
