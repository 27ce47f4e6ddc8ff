package kernel_test

import (
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDs(t *testing.T) {
	t.Run("fresh identifiers are uuids", func(t *testing.T) {
		for _, s := range []string{
			kernel.NewProductID().String(),
			kernel.NewOrderID().String(),
			kernel.NewCustomerID().String(),
		} {
			_, err := uuid.Parse(s)
			assert.NoError(t, err)
		}
	})

	t.Run("fresh identifiers are unique", func(t *testing.T) {
		seen := make(map[kernel.ProductID]struct{})
		for range 1000 {
			id := kernel.NewProductID()
			_, dup := seen[id]
			require.False(t, dup)
			seen[id] = struct{}{}
		}
	})
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "uuid", input: "550e8400-e29b-41d4-a716-446655440000", want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "opaque string", input: "SKU-001", want: "SKU-001"},
		{name: "surrounding spaces are trimmed", input: "  p-1 ", want: "p-1"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pid, perr := kernel.ParseProductID(tt.input)
			oid, oerr := kernel.ParseOrderID(tt.input)
			cid, cerr := kernel.ParseCustomerID(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, perr, errs.ErrValueIsRequired)
				require.ErrorIs(t, oerr, errs.ErrValueIsRequired)
				require.ErrorIs(t, cerr, errs.ErrValidation)
				return
			}
			require.NoError(t, perr)
			require.NoError(t, oerr)
			require.NoError(t, cerr)
			assert.Equal(t, tt.want, pid.String())
			assert.Equal(t, tt.want, oid.String())
			assert.Equal(t, tt.want, cid.String())
		})
	}
}

func TestIDs_Validate(t *testing.T) {
	assert.Error(t, kernel.ProductID("").Validate())
	assert.Error(t, kernel.OrderID("").Validate())
	assert.Error(t, kernel.CustomerID(" ").Validate())
	assert.NoError(t, kernel.OrderID("o-1").Validate())
}
