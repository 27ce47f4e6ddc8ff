// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell constructed instances apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
// A struct embedding a guard fails validation when used as a zero value,
// so a half-initialized aggregate is never mistaken for a valid one.
//
// Example usage:
//
//	var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct")
//
//	type Product struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewProduct(name string) (*Product, error) {
//	    if name == "" {
//	        return nil, errs.NewValueIsRequiredError("name")
//	    }
//	    return &Product{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p *Product) Validate() error {
//	    return p.guard.Validate(ErrProductIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from
// the owner's constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
