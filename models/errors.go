package models

import "errors"

// Failure classes the HTTP layer maps onto statuses.
var (
	ErrValidation   = errors.New("validation failed")
	ErrDuplicateID  = errors.New("item with this ID already exists")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream service failed")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidPin   = errors.New("invalid PIN or phone number")
)
