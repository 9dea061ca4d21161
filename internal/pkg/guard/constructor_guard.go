// Package guard provides a construction marker for value objects, commands,
// and entities. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which is the whole point: a struct that
// bypassed its constructor carries a zero guard and is rejected before any
// invariant-dependent operation runs on it.
//
// Usage:
//
//	type AcceptTripCommand struct {
//	    tripID    kernel.UUID
//	    vehicleID string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewAcceptTripCommand(...) (AcceptTripCommand, error) {
//	    return AcceptTripCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AcceptTripCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptTripCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built via its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
