package store

import "errors"

var (
	// ErrFileNotFound signals that no object exists under the requested key.
	ErrFileNotFound = errors.New("file not found")
	// ErrBucketNotFound signals that the configured bucket does not exist or is inaccessible.
	ErrBucketNotFound = errors.New("bucket not found")
)
