package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"

	"golang.org/x/text/currency"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// DefaultCurrency is the currency of an empty order's total.
var DefaultCurrency = currency.COP

// Order is the aggregate root of a customer purchase. It owns its items and
// drives the order lifecycle.
//
// Order follows these invariants:
//   - Must have a valid identifier and customer reference
//   - Items are only added or removed while the order is Pending
//   - All items share the currency of the first item
//   - Status moves forward one step at a time and never back
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// customerID references the customer who placed the order
	customerID kernel.CustomerID

	// status represents the current state in the order lifecycle
	status Status

	// items are the order lines in insertion order
	items []Item

	// createdAt is the construction time in UTC
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new, empty, Pending order.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: the ordering customer
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: joined validation errors if any parameter is invalid
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewOrderID(), customerID)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The creation time is taken from the system clock, in UTC.
func NewOrder(id kernel.OrderID, customerID kernel.CustomerID) (*Order, error) {
	o := &Order{
		status:    Pending,
		items:     []Item{},
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state.
//
// Parameters:
//   - id, customerID: as in NewOrder
//   - status: any valid status
//   - items: order lines in their stored order; they must share one currency
//   - createdAt: the original creation time, must be set
//
// Returns:
//   - *Order: the restored order
//   - error: joined validation errors, including ErrCurrencyMismatch violations
func RestoreOrder(
	id kernel.OrderID,
	customerID kernel.CustomerID,
	status Status,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value order
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsPending reports whether the order still accepts item changes.
func (o *Order) IsPending() bool {
	return o.status == Pending
}

// Items returns a copy of the order lines; changing it does not affect the order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Currency returns the currency established by the first item.
// ok is false for an empty order.
func (o *Order) Currency() (unit currency.Unit, ok bool) {
	if len(o.items) == 0 {
		return currency.Unit{}, false
	}
	return o.items[0].UnitPrice().Currency(), true
}

// AddItem appends a line to a pending order.
//
// This method enforces the following business rules:
//   - The item must be constructed
//   - The order must be Pending
//   - The item's currency must match the currency of the existing items
//
// Returns:
//   - nil on success
//   - InvalidTransitionError if the order is not Pending
//   - InvariantViolationError wrapping kernel.ErrCurrencyMismatch on a currency conflict
//
// Example:
//
//	price, _ := kernel.NewMoney(decimal.NewFromInt(10), "USD")
//	item, _ := order.NewItem(productID, 2, price)
//	if err := o.AddItem(item); err != nil {
//	    // order unchanged
//	}
//
// A rejected item leaves the order's items untouched.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, err := o.status.Next(AddItem); err != nil {
		return err
	}
	if err := o.checkCurrency(item); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes the first line equal to item from a pending order.
// Removing a line the order does not contain is a no-op.
//
// Returns:
//   - nil on success or when no line matched
//   - InvalidTransitionError if the order is not Pending
func (o *Order) RemoveItem(item Item) error {
	if _, err := o.status.Next(RemoveItem); err != nil {
		return err
	}

	idx := slices.IndexFunc(o.items, item.IsEqual)
	if idx < 0 {
		return nil
	}
	o.items = slices.Delete(o.items, idx, idx+1)
	return nil
}

// Confirm moves a Pending order to Confirmed.
func (o *Order) Confirm() error {
	return o.apply(Confirm)
}

// Ship moves a Confirmed order to Shipped.
func (o *Order) Ship() error {
	return o.apply(Ship)
}

// Deliver moves a Shipped order to Delivered. Delivered is final.
func (o *Order) Deliver() error {
	return o.apply(Deliver)
}

// Apply performs a lifecycle action (Confirm, Ship or Deliver).
//
// Returns:
//   - nil on a valid transition
//   - ValueIsInvalidError for a non-lifecycle action
//   - InvalidTransitionError when the current status does not allow action
func (o *Order) Apply(action Action) error {
	if !action.IsLifecycle() {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%s is not a lifecycle action", action))
	}
	return o.apply(action)
}

// Total sums the item totals in the order's currency. An empty order totals
// zero in DefaultCurrency.
//
// Example:
//
//	// items: 2 x 10 COP, 3 x 5 COP
//	total, _ := o.Total() // 35 COP
func (o *Order) Total() (kernel.Money, error) {
	unit, ok := o.Currency()
	if !ok {
		unit = DefaultCurrency
	}

	total := kernel.ZeroMoneyIn(unit)
	for _, item := range o.items {
		var err error
		if total, err = total.Add(item.TotalPrice()); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func (o *Order) apply(action Action) error {
	next, err := o.status.Next(action)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) checkCurrency(item Item) error {
	unit, ok := o.Currency()
	if ok && unit != item.UnitPrice().Currency() {
		return errs.NewInvariantViolationError(
			kernel.ErrCurrencyMismatch,
			fmt.Sprintf("order %s is in %s, item is in %s", o.id, unit, item.UnitPrice().Currency()),
		)
	}
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	o.items = make([]Item, 0, len(items))
	var errList []error
	for _, item := range items {
		if err := item.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if err := o.checkCurrency(item); err != nil {
			errList = append(errList, err)
			continue
		}
		o.items = append(o.items, item)
	}
	return errors.Join(errList...)
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
