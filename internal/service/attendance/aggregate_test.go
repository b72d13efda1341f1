package attendance

import (
	"testing"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDebt(t *testing.T) {
	total, err := AggregateDebt([]attendance.Attendance{{TimeDebt: 30}, {TimeDebt: 0}, {TimeDebt: 45}})
	require.NoError(t, err)
	assert.Equal(t, 75, total)

	_, err = AggregateDebt(nil)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAggregateStatusCounts(t *testing.T) {
	counts, err := AggregateStatusCounts([]attendance.Presence{
		{Status: attendance.PresencePresent},
		{Status: attendance.PresencePresent},
		{Status: attendance.PresenceExcused},
		{Status: attendance.PresenceAbsent},
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCounts{Present: 2, Excused: 1, Absent: 1}, counts)

	_, err = AggregateStatusCounts(nil)
	assert.ErrorIs(t, err, attendance.ErrPresenceNotFound)

	_, err = AggregateStatusCounts([]attendance.Presence{{Status: "sick"}})
	assert.ErrorIs(t, err, attendance.ErrInvalidPresenceStatus)
}
