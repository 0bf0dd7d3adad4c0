package models

import "errors"

// Sentinel errors shared by repositories, services and handlers.
// Wrap with fmt.Errorf("...: %w", Err...) and match with errors.Is.
var (
	// ErrNotFound means a referenced id does not exist. No side effect occurred.
	ErrNotFound = errors.New("not found")
	// ErrValidation means a request was rejected before any mutation.
	ErrValidation = errors.New("validation failed")
	// ErrRestore means a restore failed mid-flight and was rolled back in full.
	ErrRestore = errors.New("restore failed")
)
