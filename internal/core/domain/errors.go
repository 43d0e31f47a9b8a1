package domain

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("insufficient access")
	ErrUnauthorized       = errors.New("authentication required")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoFirm             = errors.New("user has no firm")
	ErrUnknownModule      = errors.New("unknown module key")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
)
