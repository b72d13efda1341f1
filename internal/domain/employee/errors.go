package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUsernameExists   = errors.New("username already registered")
	ErrEmailExists      = errors.New("email already registered")
	ErrNIPExists        = errors.New("NIP already registered")
)
