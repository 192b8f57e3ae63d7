package domain

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidDate    = errors.New("invalid date")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already exists")
	ErrSeatLocked     = errors.New("seat is already locked")
)
