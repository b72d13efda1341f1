package project

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
