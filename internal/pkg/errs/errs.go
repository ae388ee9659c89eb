package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures across the application.
// Typed errors below wrap these so callers can use errors.Is for
// classification and still read structured details off the concrete type.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrForbidden         = errors.New("operation is forbidden")
	ErrInvalidState      = errors.New("state transition is invalid")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
)

// sanitize strips newlines from interpolated values so errors stay
// single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that a referenced object does not exist.
// ParamName names the identifier that failed to resolve, ID carries its value.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// an underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ForbiddenError indicates the caller has no legitimate relationship to the
// object it is acting on, or its role may not perform the operation at all.
type ForbiddenError struct {
	Operation string
	Cause     error
}

// NewForbiddenError creates a ForbiddenError for the named operation.
func NewForbiddenError(operation string) *ForbiddenError {
	return &ForbiddenError{Operation: operation}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping a cause that
// explains which relationship check failed.
func NewForbiddenErrorWithCause(operation string, cause error) *ForbiddenError {
	return &ForbiddenError{Operation: operation, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.Operation))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError indicates a lifecycle transition that is not legal from
// the object's current state. It also classifies the loser of a concurrent
// conditional update, whose expected pre-state no longer held at write time.
type InvalidStateError struct {
	Operation string
	State     string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for an operation
// attempted from the given current state.
func NewInvalidStateError(operation string, state string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping a cause.
func NewInvalidStateErrorWithCause(operation string, state string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed from %s (cause: %s)",
			ErrInvalidState, e.Operation, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidState, e.Operation, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ValueIsInvalidError indicates a value that does not satisfy its format or
// business constraints.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required value that is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
