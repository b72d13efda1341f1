package schedule

import "errors"

var (
	ErrInvalidShift    = errors.New("invalid shift designator")
	ErrInvalidWorkTime = errors.New("invalid work time override")
)
