// Package guard marks values that were built through their constructor so that
// zero values of commands, queries and aggregates can be rejected at use time.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created by their constructor.
// Its zero value reports "not constructed".
//
// Example:
//
//	var ErrSaveOrderCommandIsNotConstructed = errors.New("SaveOrderCommand must be created via NewSaveOrderCommand")
//
//	type SaveOrderCommand struct {
//	    order *order.Order
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SaveOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
