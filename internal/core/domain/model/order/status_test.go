package order_test

import (
	"fmt"
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 2, int(order.Confirmed))
	assert.Equal(t, 3, int(order.Shipped))
	assert.Equal(t, 4, int(order.Delivered))
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered} {
		t.Run(fmt.Sprintf("should validate %s", s), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(5)} {
		t.Run(fmt.Sprintf("should reject %d", int(s)), func(t *testing.T) {
			require.ErrorIs(t, s.Validate(), errs.ErrValidation)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "CONFIRMED", order.Confirmed.String())
	assert.Equal(t, "SHIPPED", order.Shipped.String())
	assert.Equal(t, "DELIVERED", order.Delivered.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		code    string
		want    order.Status
		wantErr bool
	}{
		{code: "PENDING", want: order.Pending},
		{code: "confirmed", want: order.Confirmed},
		{code: " Shipped", want: order.Shipped},
		{code: "delivered", want: order.Delivered},
		{code: "UNKNOWN", wantErr: true},
		{code: "cancelled", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := order.ParseStatus(tt.code)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Next(t *testing.T) {
	statuses := []order.Status{order.Unknown, order.Pending, order.Confirmed, order.Shipped, order.Delivered}
	actions := []order.Action{order.Confirm, order.Ship, order.Deliver, order.AddItem, order.RemoveItem}

	allowed := map[order.Status]map[order.Action]order.Status{
		order.Pending: {
			order.Confirm:    order.Confirmed,
			order.AddItem:    order.Pending,
			order.RemoveItem: order.Pending,
		},
		order.Confirmed: {order.Ship: order.Shipped},
		order.Shipped:   {order.Deliver: order.Delivered},
	}

	for _, from := range statuses {
		for _, action := range actions {
			t.Run(fmt.Sprintf("%s from %s", action, from), func(t *testing.T) {
				next, err := from.Next(action)

				want, ok := allowed[from][action]
				if ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, order.Unknown, next)
				assert.Contains(t, err.Error(), fmt.Sprintf("cannot %s from %s", action, from))
			})
		}
	}
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.Shipped.IsFinal())
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		code    string
		want    order.Action
		wantErr bool
	}{
		{code: "confirm", want: order.Confirm},
		{code: "SHIP", want: order.Ship},
		{code: "Deliver", want: order.Deliver},
		{code: "add item", wantErr: true},
		{code: "cancel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := order.ParseAction(tt.code)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsLifecycle())
		})
	}
}
