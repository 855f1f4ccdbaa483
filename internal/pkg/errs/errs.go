package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each failure kind. Concrete error values created by the
// constructors below unwrap to one of these, so callers classify errors with
// errors.Is instead of type assertions.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAccessForbidden   = errors.New("access forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
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

// ValueIsInvalidError indicates that a value is present but invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
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

// ObjectNotFoundError indicates that a referenced entity does not exist.
// ParamName carries the entity name (e.g. "Order", "Product") and ID the key
// that failed to resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named entity and key.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s with key '%v'", ErrObjectNotFound, e.ParamName, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// UnauthorizedError indicates that no valid authenticated identity is present.
type UnauthorizedError struct {
	Reason string
}

// NewUnauthorizedError creates an UnauthorizedError with the given reason.
func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ForbiddenError indicates that the authenticated caller is not allowed to
// access the target resource. Distinct from ObjectNotFoundError: the resource
// exists, the caller may not see it.
type ForbiddenError struct {
	Reason string
}

// NewForbiddenError creates a ForbiddenError with the given reason.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrAccessForbidden, e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}

// InvalidTransitionError indicates that an order state-machine guard rejected
// an operation. It carries the operation name and the status the aggregate was
// in when the operation was attempted.
type InvalidTransitionError struct {
	Operation string
	Status    string
	Message   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// operation attempted against the given current status.
func NewInvalidTransitionError(operation, status, message string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, Status: status, Message: message}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (operation: %s, status: %s)",
		ErrInvalidTransition, e.Message, e.Operation, e.Status))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError indicates a storage-level conflict: a uniqueness violation or a
// stale-version update. The core detects these, it does not prevent them.
type ConflictError struct {
	Detail string
	Cause  error
}

// NewConflictError creates a ConflictError with the given detail.
func NewConflictError(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(detail string, cause error) *ConflictError {
	return &ConflictError{Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Detail, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Detail))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
