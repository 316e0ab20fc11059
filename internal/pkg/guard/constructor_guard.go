// Package guard detects zero-value construction of commands, queries and
// domain objects that must be built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types whose zero value is not a valid
// instance. Only the type's constructor sets the flag.
//
//	var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket")
//
//	type Ticket struct {
//	    orderID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewTicket(orderID int64) Ticket {
//	    return Ticket{orderID: orderID, guard: guard.NewConstructorGuard()}
//	}
//
//	func (t Ticket) Validate() error {
//	    return t.guard.Validate(ErrTicketIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
