package repositories

import "errors"

var (
	// ErrNotFound means the referenced record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail means the email is already registered
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicate means an edge for the same pair already exists
	ErrDuplicate = errors.New("duplicate entry")
	// ErrSelfFollow means a user tried to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)
