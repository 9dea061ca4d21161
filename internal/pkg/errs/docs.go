// Package errs provides the standardized error types used across the trip
// coordination engine and tracking controller.
//
// The package covers the caller-fixable and lookup-failure classes of the
// error taxonomy:
//   - ValueIsRequiredError: a required value is missing (e.g. vehicle id)
//   - ValueIsInvalidError: a value is malformed or an illegal state transition
//     was requested
//   - ObjectNotFoundError: a referenced trip, stop, or order does not exist
//
// Policy errors that belong to a specific component (out-of-order stop start,
// terminal-stop moves, duplicate in-flight assignment, denied location
// permission) live as sentinels in the packages that raise them and are not
// duplicated here.
//
// Each error type follows a consistent pattern: a sentinel error variable for
// errors.Is classification, a struct carrying details, constructors with and
// without a cause, and an Unwrap method.
package errs
