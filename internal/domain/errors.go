package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when a row does not exist.
// Services wrap it into a NotFoundError with the entity kind and id.
var ErrNotFound = errors.New("not found")

// ErrDuplicateRequest is returned by the request store when the unique
// (event, requester) constraint is violated.
var ErrDuplicateRequest = errors.New("participation request already exists")

// ErrDuplicateEmail is returned by the user store when the email unique
// constraint is violated.
var ErrDuplicateEmail = errors.New("email already registered")

// NotFoundError reports a missing user, event, category, request, or
// compilation. Mapped to 404.
type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

// NotFoundf builds a NotFoundError with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// BadRequestError reports malformed input, invalid date ordering, or an
// invalid event-date lead time. Mapped to 400.
type BadRequestError struct{ Message string }

func (e *BadRequestError) Error() string { return e.Message }

// BadRequestf builds a BadRequestError with a formatted message.
func BadRequestf(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// ParticipationError reports a business rule blocking a join request
// (owner joining own event, unpublished event, exhausted limit). Mapped to 409.
type ParticipationError struct{ Message string }

func (e *ParticipationError) Error() string { return e.Message }

// EditingError reports a state-incompatible mutation attempt, such as editing
// a published event or confirming with no pending requests. Mapped to 409.
type EditingError struct{ Message string }

func (e *EditingError) Error() string { return e.Message }

// StateError reports an invalid admin state transition (publishing or
// rejecting an event that is not pending). Mapped to 409.
type StateError struct{ Message string }

func (e *StateError) Error() string { return e.Message }

// ConflictError reports a capacity conflict, such as the participant limit
// being reached during a bulk confirm, or a category still holding events.
// Mapped to 409.
type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

// IntegrityError reports a data-integrity violation surfaced by the store.
// Mapped to 409.
type IntegrityError struct{ Message string }

func (e *IntegrityError) Error() string { return e.Message }
