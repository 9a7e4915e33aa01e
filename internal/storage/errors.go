package storage

import "errors"

// Error taxonomy for storage operations. Handlers map these onto HTTP
// statuses; anything not wrapping one of them is an I/O failure.
var (
	// ErrNotFound means the referenced file, folder, or category path does
	// not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrConflict means the destination already exists, the folder to delete
	// is not empty, or a move's source equals its destination.
	ErrConflict = errors.New("entry conflict")

	// ErrInvalidInput means an empty or unsanitizable name, an unrecognized
	// category, or a path escaping the storage root.
	ErrInvalidInput = errors.New("invalid input")
)
