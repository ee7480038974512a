// Package errs provides the error taxonomy of the market service.
//
// Generic errors cover validation and lookup failures:
//   - ObjectNotFoundError: an order, user or product does not exist
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: bad input
//   - AlreadyExistsError: a uniqueness violation such as a duplicate user email
//
// Order lifecycle errors are raised by the domain model:
//   - InvalidTransitionError: unknown, redundant or illegal delivery status change
//   - ProductRemovalNotAllowedError: products detached outside PREPARING_FOR_DELIVERY
//   - CancellationNotAllowedError: cancel by a non-owner or outside PREPARING_FOR_DELIVERY
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrInvalidTransition, ...)
// with a struct carrying details. Unwrap returns the sentinel, so callers classify
// errors with errors.Is and read details with errors.As.
package errs
