package schedule

import "time"

// ShiftResolver maps a shift designator to concrete boundaries for a date.
type ShiftResolver interface {
	// ResolveShiftWindows returns the shift boundaries on the calendar day of
	// date, applying overrides when present.
	ResolveShiftWindows(shift Shift, date time.Time, overrides *WorkTimeOverrides) (ShiftWindows, error)
}
