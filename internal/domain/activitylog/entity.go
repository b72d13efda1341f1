package activitylog

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{string(StatusPending), string(StatusAccepted), string(StatusRejected)}

type ActivityLog struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
