package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fixed failure kinds. The HTTP layer matches on
// these with errors.Is / errors.As; message text is never inspected.
var (
	// ErrNotFound means no Job exists with the requested identifier.
	ErrNotFound = errors.New("job not found")

	// ErrUnauthorized means the requester's email does not match the
	// owner email stored on the target Job.
	ErrUnauthorized = errors.New("unauthorized: you can only modify your own jobs")

	// ErrSelfAccept means a user tried to accept their own posting.
	ErrSelfAccept = errors.New("you cannot accept your own job posting")

	// ErrDuplicateAccept means the (job, acceptor) pair already exists.
	ErrDuplicateAccept = errors.New("you have already accepted this job")

	// ErrNotFoundOrUnauthorized is deliberately ambiguous: accepted-job
	// removal filters on id and owner together, so a wrong id and a
	// wrong owner are indistinguishable.
	ErrNotFoundOrUnauthorized = errors.New("accepted job not found or unauthorized")
)

// ValidationError reports required input fields that are missing or empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// InvalidIDError means an identifier is not a well-formed ObjectID hex
// string. This is a client error, distinct from a lookup miss.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id format: %q", e.ID)
}

// StorageError wraps an unclassified failure raised by the document store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
