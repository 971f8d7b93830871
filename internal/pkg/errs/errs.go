package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValueIsRequired is the sentinel error for missing required values.
// Use errors.Is with this sentinel to classify ValueIsRequiredError instances.
var ErrValueIsRequired = errors.New("value is required")

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ErrValueIsInvalid is the sentinel error for invalid values.
var ErrValueIsInvalid = errors.New("value is invalid")

// ValueIsInvalidError indicates that a provided value violates a constraint.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// with an underlying cause describing the violated constraint.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ErrObjectNotFound is the sentinel error for lookups of nonexistent objects.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError indicates that an object referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a failed object lookup.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a failed object lookup
// with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ErrInvalidState is the sentinel error for operations rejected because of the
// object's current state.
var ErrInvalidState = errors.New("object state does not permit the operation")

// InvalidStateError indicates that a requested state transition is not allowed
// from the object's current state. Carries both states so callers can render
// a meaningful conflict message.
type InvalidStateError struct {
	ParamName      string
	CurrentState   string
	RequestedState string
	Cause          error
}

// NewInvalidStateError creates an error for a forbidden state transition.
func NewInvalidStateError(paramName, currentState, requestedState string) *InvalidStateError {
	return &InvalidStateError{
		ParamName:      paramName,
		CurrentState:   currentState,
		RequestedState: requestedState,
	}
}

// NewInvalidStateErrorWithCause creates an error for a forbidden state transition
// with an underlying cause.
func NewInvalidStateErrorWithCause(paramName, currentState, requestedState string, cause error) *InvalidStateError {
	return &InvalidStateError{
		ParamName:      paramName,
		CurrentState:   currentState,
		RequestedState: requestedState,
		Cause:          cause,
	}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, requested %s (cause: %s)",
			ErrInvalidState, sanitize(e.ParamName), sanitize(e.CurrentState), sanitize(e.RequestedState), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, requested %s",
		ErrInvalidState, sanitize(e.ParamName), sanitize(e.CurrentState), sanitize(e.RequestedState))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// sanitize strips newlines from values interpolated into error messages
// so log lines stay single-line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
