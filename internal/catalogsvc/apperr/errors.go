package apperr

import "fmt"

// UpstreamFetchError reports a failed call to the RAWG API. Resource
// names the sub-resource that failed (games, trailers, achievements,
// screenshots, creators).
type UpstreamFetchError struct {
	Resource string
	Status   int
	Err      error
}

func (e *UpstreamFetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to fetch %s from RAWG API: status %d", e.Resource, e.Status)
	}
	return fmt.Sprintf("failed to fetch %s from RAWG API: %v", e.Resource, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// PersistenceError reports a failed bulk write or an unreachable store.
type PersistenceError struct {
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed for %s: %v", e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotFoundError reports an absent document.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// ConflictError reports a uniqueness violation on a CRUD aggregate.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ForbiddenError reports an ownership violation.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }
