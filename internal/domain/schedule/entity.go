package schedule

import "time"

// Shift designates one of the daily work-time templates.
type Shift string

const (
	ShiftPagi  Shift = "pagi"  // morning shift
	ShiftSiang Shift = "siang" // afternoon shift
)

var ShiftValues = []string{
	string(ShiftPagi),
	string(ShiftSiang),
}

// ShiftTemplate holds the default wall-clock boundaries of a shift. Only the
// hour and minute of each field are meaningful.
type ShiftTemplate struct {
	Start      time.Time
	BreakStart time.Time
	BreakEnd   time.Time
	End        time.Time
}

// WorkTimeOverrides are per-employee "HH:MM" values set by an administrator.
// A nil field falls back to the shift template.
type WorkTimeOverrides struct {
	StartWorkTime *string
	BreakTime     *string
	EndWorkTime   *string
}

// ShiftWindows are the resolved boundaries of one shift on one calendar date.
type ShiftWindows struct {
	Start      time.Time
	BreakStart time.Time
	BreakEnd   time.Time
	End        time.Time
}
