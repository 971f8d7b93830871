// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the service:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a constraint
//   - ObjectNotFoundError: a referenced object does not exist
//   - InvalidStateError: the object's current state forbids the operation
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classification
//     works at the transport boundary
package errs
