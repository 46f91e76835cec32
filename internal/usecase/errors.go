package usecase

import "fmt"

// NotFoundError represents a missing referenced record: an asset, an
// attribute, a catalogue entry, a role or a validation record.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing records.
var ErrNotFound = NotFoundError{}

// AlreadyExistsError represents an attempted creation of an id, code or
// validation record that is already present.
type AlreadyExistsError struct {
	Resource string
}

func (e AlreadyExistsError) Error() string {
	if e.Resource == "" {
		return "already exists"
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

func (e AlreadyExistsError) Is(target error) bool {
	_, ok := target.(AlreadyExistsError)
	if ok {
		return true
	}
	_, ok = target.(*AlreadyExistsError)
	return ok
}

var ErrAlreadyExists = AlreadyExistsError{}

// NotAuthorizedError means the caller lacks the required ownership, role
// or delegation for the attempted mutation.
type NotAuthorizedError struct {
	Reason string
}

func (e NotAuthorizedError) Error() string {
	if e.Reason == "" {
		return "not authorized"
	}
	return fmt.Sprintf("not authorized: %s", e.Reason)
}

func (e NotAuthorizedError) Is(target error) bool {
	_, ok := target.(NotAuthorizedError)
	if ok {
		return true
	}
	_, ok = target.(*NotAuthorizedError)
	return ok
}

var ErrNotAuthorized = NotAuthorizedError{}

// CategoryNotFoundError means a category code was referenced before being
// defined in the catalogue.
type CategoryNotFoundError struct {
	Code uint32
}

func (e CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %d not found", e.Code)
}

func (e CategoryNotFoundError) Is(target error) bool {
	_, ok := target.(CategoryNotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*CategoryNotFoundError)
	return ok
}

var ErrCategoryNotFound = CategoryNotFoundError{}
