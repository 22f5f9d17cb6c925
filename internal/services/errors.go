package services

import "errors"

var (
	// ErrValidation reports input the business rules reject.
	ErrValidation = errors.New("validation failed")
	// ErrConflict reports a duplicate username or email.
	ErrConflict = errors.New("username or email already registered")
	// ErrUnauthorized reports bad credentials or an unusable token.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrNotFound reports a missing listing, or one the caller does not own.
	ErrNotFound = errors.New("listing not found")
	// ErrNotify reports that the notifier explicitly refused a message.
	ErrNotify = errors.New("failed to send message")
)
