// Package errs provides the standardized error taxonomy for the marketplace
// fulfillment core. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The taxonomy maps one-to-one onto the failure kinds the delivery workflow
// distinguishes:
//   - ObjectNotFoundError: an order, partner, or profile does not exist
//   - ForbiddenError: the caller lacks the relationship or role required
//   - InvalidStateError: a delivery transition is not legal from the current
//     status, including the loser of a concurrent conditional update
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     malformed input (negative fee, unknown order kind, missing field)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter relies on the sentinels for its stable status mapping:
// not-found to 404, forbidden to 403, invalid-state and validation to 400.
package errs
