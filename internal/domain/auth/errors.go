package auth

import "errors"

var (
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrForbidden              = errors.New("not allowed to act on another employee's records")
)
