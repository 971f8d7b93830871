package kernel

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by
// ConstructorGuard.Validate when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects are only created through their
// designated constructor functions. The zero value reports as not
// constructed, which lets Validate methods reject direct struct
// initialization and preserve domain invariants.
//
// Example:
//
//	type Price struct {
//	    amount decimal.Decimal
//	    guard  ConstructorGuard
//	}
//
//	func NewPrice(amount decimal.Decimal) (Price, error) {
//	    if amount.IsNegative() {
//	        return Price{}, errors.New("amount cannot be negative")
//	    }
//	    return Price{amount: amount, guard: NewConstructorGuard()}, nil
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it in the constructor of the owning value object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was properly constructed.
// Otherwise it returns validationError, falling back to
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
