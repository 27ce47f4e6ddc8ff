package order_test

import (
	"testing"
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(), kernel.NewCustomerID())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewOrderID()
	customerID := kernel.NewCustomerID()

	t.Run("should create pending empty order", func(t *testing.T) {
		before := time.Now().UTC()
		o, err := order.NewOrder(id, customerID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, id, o.ID())
		assert.Equal(t, customerID, o.CustomerID())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.IsPending())
		assert.Empty(t, o.Items())
		assert.False(t, o.CreatedAt().Before(before))
	})

	t.Run("should fail with blank ids", func(t *testing.T) {
		o, err := order.NewOrder("", " ")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "customer id")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	zero := &order.Order{}
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())

	require.NoError(t, newOrder(t).Validate())
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewOrderID()
	customerID := kernel.NewCustomerID()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	items := []order.Item{
		item(t, "p-1", 2, money(t, 10, "COP")),
		item(t, "p-2", 1, money(t, 7, "COP")),
	}

	t.Run("should restore persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, order.Shipped, items, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.Len(t, o.Items(), 2)
		assert.True(t, o.Items()[1].IsEqual(items[1]))
	})

	t.Run("should reject mixed currencies", func(t *testing.T) {
		mixed := append([]order.Item{}, items[0], item(t, "p-3", 1, money(t, 1, "USD")))

		_, err := order.RestoreOrder(id, customerID, order.Pending, mixed, createdAt)

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("should reject unknown status and zero time", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, order.Unknown, nil, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.Confirm())
	assert.Equal(t, order.Confirmed, o.Status())
	require.NoError(t, o.Ship())
	assert.Equal(t, order.Shipped, o.Status())
	require.NoError(t, o.Deliver())
	assert.Equal(t, order.Delivered, o.Status())

	for _, op := range []func() error{o.Confirm, o.Ship, o.Deliver} {
		require.ErrorIs(t, op(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	}
}

func TestOrder_InvalidTransitions(t *testing.T) {
	t.Run("confirm on a confirmed order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Confirm())

		err := o.Confirm()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("ship on a pending order", func(t *testing.T) {
		o := newOrder(t)

		err := o.Ship()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("deliver on a confirmed order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Confirm())

		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
	})
}

func TestOrder_Apply(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.Apply(order.Confirm))
	assert.Equal(t, order.Confirmed, o.Status())

	require.ErrorIs(t, o.Apply(order.AddItem), errs.ErrValueIsInvalid)
	require.ErrorIs(t, o.Apply(order.Deliver), errs.ErrInvalidTransition)
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("first item fixes the currency", func(t *testing.T) {
		o := newOrder(t)
		_, ok := o.Currency()
		require.False(t, ok)

		require.NoError(t, o.AddItem(item(t, "p-1", 2, money(t, 10, "USD"))))

		unit, ok := o.Currency()
		require.True(t, ok)
		assert.Equal(t, currency.USD, unit)
	})

	t.Run("currency mismatch leaves items unchanged", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(item(t, "p-1", 2, money(t, 10, "COP"))))
		before := len(o.Items())

		err := o.AddItem(item(t, "p-2", 1, money(t, 5, "USD")))

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		assert.Len(t, o.Items(), before)
	})

	t.Run("add after confirm is an invalid transition", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(item(t, "p-1", 2, money(t, 10, "USD"))))
		require.NoError(t, o.Confirm())

		err := o.AddItem(item(t, "p-1", 1, money(t, 10, "USD")))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("zero item is rejected", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.AddItem(order.Item{}), order.ErrItemIsNotConstructed)
		assert.Empty(t, o.Items())
	})

	t.Run("duplicate lines are kept", func(t *testing.T) {
		o := newOrder(t)
		line := item(t, "p-1", 1, money(t, 10, "COP"))

		require.NoError(t, o.AddItem(line))
		require.NoError(t, o.AddItem(line))
		assert.Len(t, o.Items(), 2)
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	a := item(t, "p-1", 2, money(t, 10, "COP"))
	b := item(t, "p-2", 3, money(t, 5, "COP"))

	t.Run("removes the first equal line", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(a))
		require.NoError(t, o.AddItem(b))
		require.NoError(t, o.AddItem(a))

		require.NoError(t, o.RemoveItem(item(t, "p-1", 2, money(t, 10, "COP"))))

		items := o.Items()
		require.Len(t, items, 2)
		assert.True(t, items[0].IsEqual(b))
		assert.True(t, items[1].IsEqual(a))
	})

	t.Run("absent line is a no-op", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(a))

		require.NoError(t, o.RemoveItem(b))
		assert.Len(t, o.Items(), 1)
	})

	t.Run("not allowed once confirmed", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(a))
		require.NoError(t, o.Confirm())

		require.ErrorIs(t, o.RemoveItem(a), errs.ErrInvalidTransition)
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.AddItem(item(t, "p-1", 2, money(t, 10, "COP"))))

	items := o.Items()
	items[0] = item(t, "p-9", 9, money(t, 9, "COP"))

	assert.Equal(t, kernel.ProductID("p-1"), o.Items()[0].ProductID())
}

func TestOrder_Total(t *testing.T) {
	t.Run("sums item totals", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(item(t, "p-1", 2, money(t, 10, "COP"))))
		require.NoError(t, o.AddItem(item(t, "p-2", 3, money(t, 5, "COP"))))

		total, err := o.Total()

		require.NoError(t, err)
		assert.True(t, total.IsEqual(money(t, 35, "COP")))
		assert.Equal(t, "35 COP", total.String())
	})

	t.Run("empty order totals zero in the default currency", func(t *testing.T) {
		total, err := newOrder(t).Total()

		require.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.Equal(t, order.DefaultCurrency, total.Currency())
	})

	t.Run("total follows the order currency", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(item(t, "p-1", 1, money(t, 4, "USD"))))

		total, err := o.Total()

		require.NoError(t, err)
		assert.Equal(t, currency.USD, total.Currency())
	})
}
