package attendance

import (
	"time"
)

// Attendance is the daily check-in record of one employee. It is keyed by
// (EmployeeID, Date); there is never more than one per employee per day.
type Attendance struct {
	EmployeeID string
	Date       time.Time // calendar day at 00:00 UTC

	// Absolute instants, stored in UTC.
	Start  *time.Time
	Break  *time.Time
	Resume *time.Time
	End    *time.Time

	TimeDebt  int // minutes owed
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName string
}

// State derives the position in the daily check-in sequence from the
// populated timestamps.
func (a Attendance) State() State {
	switch {
	case a.End != nil:
		return StateEnded
	case a.Resume != nil:
		return StateResumed
	case a.Break != nil:
		return StateOnBreak
	case a.Start != nil:
		return StateStarted
	default:
		return StateNotStarted
	}
}

type State string

const (
	StateNotStarted State = "not_started"
	StateStarted    State = "started"
	StateOnBreak    State = "on_break"
	StateResumed    State = "resumed"
	StateEnded      State = "ended"
)

// EventType is one of the four check-in actions.
type EventType string

const (
	EventStart  EventType = "start"
	EventBreak  EventType = "break"
	EventResume EventType = "resume"
	EventEnd    EventType = "end"
)

var EventTypeValues = []string{
	string(EventStart),
	string(EventBreak),
	string(EventResume),
	string(EventEnd),
}

// PresenceStatus is the daily "kehadiran" classification.
type PresenceStatus string

const (
	PresencePresent PresenceStatus = "present"
	PresenceAbsent  PresenceStatus = "absent"
	PresenceExcused PresenceStatus = "excused"
)

// Presence is keyed identically to Attendance.
type Presence struct {
	EmployeeID string
	Date       time.Time
	Status     PresenceStatus
	UpdatedAt  time.Time
}

type StatusCounts struct {
	Present int
	Excused int
	Absent  int
}

// DayOf returns the calendar day of t in loc, normalised to 00:00 UTC so
// that it compares equal to a DATE column read back from the store.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
