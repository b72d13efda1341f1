package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrInvalidEventType  = errors.New("invalid check-in type")
	ErrMissingPriorEvent = errors.New("check-in is out of order: a required earlier event is missing")
	ErrPrematureEnd      = errors.New("it's not yet time to end the shift")

	// Presence errors
	ErrAlreadyPresent        = errors.New("employee already checked in on this date")
	ErrPresenceNotFound      = errors.New("presence record not found")
	ErrInvalidPresenceStatus = errors.New("invalid presence status")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
