// Package errs provides standardized error types for the ordersheet application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed interval
//   - ObjectNotFoundError: For when an object cannot be found
//   - ResourceIsBusyError: For when the writer lock could not be acquired in time
//   - StorageFailedError: For when the underlying storage engine raised an error
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Request handlers classify failures with errors.Is against the sentinels and turn
// them into user-facing envelope messages.
package errs
