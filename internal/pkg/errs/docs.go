// Package errs provides standardized error types for the tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a read by identity found no row
//   - PersistenceError: a write reported zero affected rows or an invalid generated identity
//   - InvalidOperationError: a business-rule violation (e.g. reverting past the last checkpoint)
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
