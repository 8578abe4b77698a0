// Package guard provides ConstructorGuard, a marker embedded in commands,
// queries and value objects to tell constructor-built values apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
//	type VoidQuoteCommand struct {
//	    quoteNo string
//	    reason  string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c VoidQuoteCommand) Validate() error {
//	    return c.guard.Validate(ErrVoidQuoteCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
