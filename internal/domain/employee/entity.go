package employee

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/schedule"
)

// Employee is a karyawan entry in the directory.
type Employee struct {
	ID               string
	FullName         string
	Username         string
	Email            string
	NIP              string
	PhoneNumber      string
	Address          *string
	Division         string
	DateOfBirth      *time.Time
	Shift            schedule.Shift
	StartWorkTime    *string // "HH:MM", overrides the shift start
	BreakTime        *string // "HH:MM", overrides the break start
	EndWorkTime      *string // "HH:MM", overrides the shift end
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WorkTimeOverrides returns the administrator overrides, or nil when none are set.
func (e Employee) WorkTimeOverrides() *schedule.WorkTimeOverrides {
	if e.StartWorkTime == nil && e.BreakTime == nil && e.EndWorkTime == nil {
		return nil
	}
	return &schedule.WorkTimeOverrides{
		StartWorkTime: e.StartWorkTime,
		BreakTime:     e.BreakTime,
		EndWorkTime:   e.EndWorkTime,
	}
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)
