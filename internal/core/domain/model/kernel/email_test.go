package kernel_test

import (
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain address", input: "ana@arka.co", want: "ana@arka.co"},
		{name: "plus and dots", input: "ana.maria+orders@arka.co", want: "ana.maria+orders@arka.co"},
		{name: "trimmed", input: "  ana@arka.co  ", want: "ana@arka.co"},
		{name: "blank", input: " ", wantErr: errs.ErrValueIsRequired},
		{name: "missing at", input: "ana.arka.co", wantErr: errs.ErrValueIsInvalid},
		{name: "missing domain", input: "ana@", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := kernel.NewEmail(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, email.Validate(), kernel.ErrEmailIsNotConstructed)
				return
			}
			require.NoError(t, err)
			require.NoError(t, email.Validate())
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestNewEmail_Generated(t *testing.T) {
	for range 50 {
		_, err := kernel.NewEmail(gofakeit.Email())
		require.NoError(t, err)
	}
}

func TestEmail_IsEqual(t *testing.T) {
	a, err := kernel.NewEmail("Ana@Arka.co")
	require.NoError(t, err)
	b, err := kernel.NewEmail("ana@arka.co")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
}
