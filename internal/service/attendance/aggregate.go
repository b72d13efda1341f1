package attendance

import "github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"

// AggregateDebt sums the time debt of records.
func AggregateDebt(records []attendance.Attendance) (int, error) {
	if len(records) == 0 {
		return 0, attendance.ErrAttendanceNotFound
	}
	total := 0
	for _, r := range records {
		total += r.TimeDebt
	}
	return total, nil
}

// AggregateStatusCounts counts presence records per status.
func AggregateStatusCounts(records []attendance.Presence) (attendance.StatusCounts, error) {
	if len(records) == 0 {
		return attendance.StatusCounts{}, attendance.ErrPresenceNotFound
	}
	var counts attendance.StatusCounts
	for _, r := range records {
		switch r.Status {
		case attendance.PresencePresent:
			counts.Present++
		case attendance.PresenceExcused:
			counts.Excused++
		case attendance.PresenceAbsent:
			counts.Absent++
		default:
			return attendance.StatusCounts{}, attendance.ErrInvalidPresenceStatus
		}
	}
	return counts, nil
}
