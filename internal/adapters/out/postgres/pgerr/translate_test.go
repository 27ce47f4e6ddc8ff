package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres/pgerr"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		code string
		rule error
	}{
		{"unique", "23505", pgerr.ErrDuplicateKey},
		{"check", "23514", pgerr.ErrCheckViolation},
		{"foreign key", "23503", pgerr.ErrForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := fmt.Errorf("exec: %w", &pgconn.PgError{Code: tt.code, ConstraintName: "chk_products_stock"})

			err := pgerr.Translate("productrepo.Save", cause)

			require.ErrorIs(t, err, errs.ErrInvariantViolation)
			require.ErrorIs(t, err, tt.rule)
			assert.Contains(t, err.Error(), "chk_products_stock")
		})
	}
}

func TestTranslate_NumericOutOfRange(t *testing.T) {
	cause := &pgconn.PgError{Code: "22003", ColumnName: "stock", Message: "integer out of range"}

	err := pgerr.Translate("productrepo.Save", cause)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "integer out of range")
}

func TestTranslate_OtherErrorsAreWrapped(t *testing.T) {
	cause := errors.New("connection reset")

	err := pgerr.Translate("orderrepo.Save", cause)

	require.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "orderrepo.Save: connection reset")
	assert.NotErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestTranslate_OtherSQLState(t *testing.T) {
	err := pgerr.Translate("op", &pgconn.PgError{Code: "40001"})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "40001", pgErr.Code)
}

func TestTranslate_Nil(t *testing.T) {
	assert.NoError(t, pgerr.Translate("op", nil))
}
