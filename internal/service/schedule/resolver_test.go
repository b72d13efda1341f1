package schedule

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, loc *time.Location) schedule.ShiftResolver {
	t.Helper()
	templates, err := TemplatesFromConfig(config.ShiftConfig{
		Pagi:  config.ShiftTimes{Start: "09:00", BreakStart: "13:00", BreakEnd: "14:00", End: "17:00"},
		Siang: config.ShiftTimes{Start: "13:00", BreakStart: "17:00", BreakEnd: "18:00", End: "21:00"},
	})
	require.NoError(t, err)
	return NewShiftResolver(templates, time.Hour, loc)
}

func TestResolveShiftWindows_Defaults(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	r := newTestResolver(t, loc)
	date := time.Date(2024, 3, 4, 22, 15, 0, 0, loc)

	tests := []struct {
		shift schedule.Shift
		want  [4]int // start, break start, break end, end (hours)
	}{
		{schedule.ShiftPagi, [4]int{9, 13, 14, 17}},
		{schedule.ShiftSiang, [4]int{13, 17, 18, 21}},
	}
	for _, tt := range tests {
		t.Run(string(tt.shift), func(t *testing.T) {
			w, err := r.ResolveShiftWindows(tt.shift, date, nil)
			require.NoError(t, err)
			assert.Equal(t, time.Date(2024, 3, 4, tt.want[0], 0, 0, 0, loc), w.Start)
			assert.Equal(t, time.Date(2024, 3, 4, tt.want[1], 0, 0, 0, loc), w.BreakStart)
			assert.Equal(t, time.Date(2024, 3, 4, tt.want[2], 0, 0, 0, loc), w.BreakEnd)
			assert.Equal(t, time.Date(2024, 3, 4, tt.want[3], 0, 0, 0, loc), w.End)
		})
	}
}

func TestResolveShiftWindows_Overrides(t *testing.T) {
	r := newTestResolver(t, time.UTC)
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	start, brk, end := "08:30", "12:15", "16:45"

	w, err := r.ResolveShiftWindows(schedule.ShiftPagi, date, &schedule.WorkTimeOverrides{
		StartWorkTime: &start,
		BreakTime:     &brk,
		EndWorkTime:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 4, 12, 15, 0, 0, time.UTC), w.BreakStart)
	assert.Equal(t, time.Date(2024, 3, 4, 13, 15, 0, 0, time.UTC), w.BreakEnd)
	assert.Equal(t, time.Date(2024, 3, 4, 16, 45, 0, 0, time.UTC), w.End)

	// Partial override keeps the rest of the template.
	w, err = r.ResolveShiftWindows(schedule.ShiftSiang, date, &schedule.WorkTimeOverrides{EndWorkTime: &end})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 4, 16, 45, 0, 0, time.UTC), w.End)
}

func TestResolveShiftWindows_Invalid(t *testing.T) {
	r := newTestResolver(t, time.UTC)
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	_, err := r.ResolveShiftWindows(schedule.Shift("malam"), date, nil)
	assert.ErrorIs(t, err, schedule.ErrInvalidShift)

	bad := "25:99"
	_, err = r.ResolveShiftWindows(schedule.ShiftPagi, date, &schedule.WorkTimeOverrides{BreakTime: &bad})
	assert.ErrorIs(t, err, schedule.ErrInvalidShift)
	assert.ErrorIs(t, err, schedule.ErrInvalidWorkTime)
}

func TestTemplatesFromConfig_RejectsBadClock(t *testing.T) {
	_, err := TemplatesFromConfig(config.ShiftConfig{
		Pagi:  config.ShiftTimes{Start: "9", BreakStart: "13:00", BreakEnd: "14:00", End: "17:00"},
		Siang: config.ShiftTimes{Start: "13:00", BreakStart: "17:00", BreakEnd: "18:00", End: "21:00"},
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidWorkTime)
}
