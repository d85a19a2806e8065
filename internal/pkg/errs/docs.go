// Package errs provides the error taxonomy shared by the domain, the application
// layer and the adapters.
//
// Every error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrForbidden) usable with errors.Is
//   - a struct type carrying the details, usable with errors.As
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Kinds:
//   - ForbiddenError: an access policy denied the operation
//   - InvalidTransitionError: a state machine refused a transition
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: malformed input
//   - ConflictError: a concurrent write was detected by a repository
//   - ObjectNotFoundError: a referenced entity does not exist
package errs
