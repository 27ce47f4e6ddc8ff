package product

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

// MaxStock is the largest stock a product can hold. It matches the width of the
// stock column.
const MaxStock = math.MaxInt32

var (
	// ErrProductIsNotConstructed is returned when a Product was not created through
	// NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is the rule broken when more units are taken than are in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is a catalog item that carries a stock level.
//
// Product follows these invariants:
//   - Must have a non-blank identifier and name
//   - Price is a constructed Money value
//   - Stock is never negative and never above MaxStock
//   - Category is one of the known categories
//
// Only the stock changes after construction, and only through ReduceStock and
// IncreaseStock. A Product is not safe for concurrent mutation.
type Product struct {
	id          kernel.ProductID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    Category

	guard guard.ConstructorGuard
}

// NewProduct creates a Product, validating every field and joining all failures.
//
// Parameters:
//   - id: non-blank product identifier
//   - name: non-blank display name
//   - description: free text, may be empty
//   - price: unit price
//   - stock: initial stock, zero or more
//   - category: catalog section
//
// Returns:
//   - *Product: the created product if all validations pass
//   - error: joined validation errors otherwise
//
// Example:
//
//	price, _ := kernel.NewMoney(decimal.NewFromInt(250000), "COP")
//	p, err := product.NewProduct(kernel.NewProductID(), "Keyboard", "", price, 5, product.Electronics)
//	if err != nil {
//	    // Handle validation error
//	}
func NewProduct(
	id kernel.ProductID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category Category,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}
	p.description = strings.TrimSpace(description)

	return p, nil
}

// RestoreProduct rebuilds a Product from persisted state with the same validation as NewProduct.
func RestoreProduct(
	id kernel.ProductID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category Category,
) (*Product, error) {
	return NewProduct(id, name, description, price, stock, category)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

func (p *Product) ID() kernel.ProductID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) Category() Category {
	return p.category
}

// ReduceStock takes quantity units out of stock.
//
// Returns:
//   - nil when the stock was reduced by quantity
//   - a validation error when quantity is negative
//   - an InvariantViolationError wrapping ErrInsufficientStock when quantity
//     exceeds the current stock; the stock is left unchanged
//
// Example:
//
//	if err := p.ReduceStock(3); errors.Is(err, product.ErrInsufficientStock) {
//	    // not enough units
//	}
func (p *Product) ReduceStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, p.stock)
	}
	if quantity > p.stock {
		return errs.NewInvariantViolationError(
			ErrInsufficientStock,
			fmt.Sprintf("product %s has %d units, requested %d", p.id, p.stock, quantity),
		)
	}

	p.stock -= quantity
	return nil
}

// IncreaseStock adds quantity units to the stock. A negative quantity, or one
// that would push the stock above MaxStock, is rejected and the stock is left unchanged.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity < 0 || quantity > MaxStock-p.stock {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, MaxStock-p.stock)
	}

	p.stock += quantity
	return nil
}

// IsLowStock reports whether the stock is strictly below threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.stock < threshold
}

// WithStock returns a copy of the product carrying newStock. The receiver is not modified.
func (p *Product) WithStock(newStock int) (*Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return NewProduct(p.id, p.name, p.description, p.price, newStock, p.category)
}

func (p *Product) setID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 || stock > MaxStock {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, MaxStock)
	}
	p.stock = stock
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
