// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: an aggregate or read model row does not exist
//   - PermissionDeniedError: the actor's role or ownership forbids the action
//   - ConflictError: a concurrent writer won, or a uniqueness rule was hit
//   - RuleViolationError, InvalidTransitionError: business rules on orders
//   - UnauthenticatedError, TooManyAttemptsError: account and token failures
//   - InfrastructureError: database, broker or mail failures
//
// Each error type unwraps to a sentinel (e.g., ErrValueIsRequired), so callers
// classify failures with errors.Is. The HTTP adapter maps sentinels to status codes.
package errs
