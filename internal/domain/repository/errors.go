package repository

import "errors"

var (
	// ErrNotFound is returned when an aggregate cannot be found.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when saving an aggregate whose id already exists.
	ErrDuplicate = errors.New("already exists")

	// ErrBucketNotFound is returned when the configured storage bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)
