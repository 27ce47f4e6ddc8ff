package order

import (
	"errors"
	"fmt"
	"math"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

// MaxItemQuantity is the largest quantity a single order line can carry.
const MaxItemQuantity = math.MaxInt32

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable order line: a product reference, a positive quantity
// and the unit price captured when the line was added. Items compare by value.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	quantity  int
	unitPrice kernel.Money
	guard     guard.ConstructorGuard
}

// NewItem creates an order line.
//
// Parameters:
//   - productID: the product this line refers to
//   - quantity: number of units, from 1 to MaxItemQuantity
//   - unitPrice: price of one unit
//
// Returns:
//   - Item: the created line
//   - error: joined validation errors
func NewItem(productID kernel.ProductID, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.ProductID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unit price times quantity.
func (i Item) TotalPrice() kernel.Money {
	// quantity > 0 and a constructed unit price make Multiply infallible here
	total, err := i.unitPrice.Multiply(i.quantity)
	if err != nil {
		return kernel.ZeroMoneyIn(i.unitPrice.Currency())
	}
	return total
}

// IsEqual compares product, quantity and unit price.
func (i Item) IsEqual(other Item) bool {
	return i.productID == other.productID &&
		i.quantity == other.quantity &&
		i.unitPrice.IsEqual(other.unitPrice)
}

func (i *Item) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
