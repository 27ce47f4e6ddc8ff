// Package errs provides standardized error types for the arka application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvariantViolationError: For when a business rule rejects an operation
//   - InvalidTransitionError: For when a state machine move is not allowed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The three value errors additionally match ErrValidation, so callers can classify
// malformed input without listing every concrete kind:
//
//	if errors.Is(err, errs.ErrValidation) {
//	    // reject with 400
//	}
package errs
