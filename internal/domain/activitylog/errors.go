package activitylog

import "errors"

var (
	ErrActivityLogNotFound = errors.New("activity log not found")
	ErrNoActivityLogs      = errors.New("no activity logs found")
	ErrInvalidStatus       = errors.New("invalid activity log status")
)
