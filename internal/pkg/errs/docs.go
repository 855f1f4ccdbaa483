// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure kind the application knows how
// to handle at its boundary:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a referenced entity does not exist
//   - UnauthorizedError: no authenticated identity is present
//   - ForbiddenError: an authenticated identity lacks access to the resource
//   - InvalidTransitionError: an order state-machine guard rejected an operation
//   - ConflictError: a storage-level uniqueness or version conflict
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach lets the HTTP layer map every business failure to a
// transport status with a single errors.Is chain, and keeps error classification
// consistent throughout the application.
package errs
