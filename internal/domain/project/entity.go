package project

import "time"

type Project struct {
	ID          string
	Name        string
	Description string
	Members     []string // employee IDs
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the project runs on the day of now.
func (p Project) IsActive(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// Member is a project member resolved against the employee directory.
type Member struct {
	EmployeeID string
	Name       string
	Role       string
}
