// Package errs provides the error kinds shared by the parcel tracking service.
// Every kind follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Kinds and the caller-visible outcome they map to at the request boundary:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failure
//   - UnauthenticatedError: missing, invalid or expired identity
//   - AccessDeniedError: role rank insufficient or package not owned by the principal
//   - ObjectNotFoundError: tracking number, user, catalog entry or history record does not exist
//   - ObjectAlreadyExistsError, ObjectIsReferencedError: conflict
//
// Any other error is a storage failure and is surfaced unchanged.
package errs
