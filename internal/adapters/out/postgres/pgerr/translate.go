// Package pgerr maps PostgreSQL constraint failures onto the typed errors of
// internal/pkg/errs so callers never depend on driver error types.
package pgerr

import (
	"errors"
	"fmt"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of the integrity constraint violation class, plus the data
// exception raised when a value does not fit its column.
const (
	codeNumericValueOutOfRange = "22003"
	codeForeignKeyViolation    = "23503"
	codeUniqueViolation        = "23505"
	codeCheckViolation         = "23514"
)

var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrCheckViolation      = errors.New("check constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key violated")
)

// Translate turns a constraint violation into an InvariantViolationError whose
// rule is one of the sentinels above and whose detail is the constraint name.
// A numeric value that does not fit its column becomes a ValueIsOutOfRangeError
// naming the column. Any other error is wrapped with op.
//
// Example:
//
//	err := Translate("productrepo.Save", db.Create(&dto).Error)
//	errors.Is(err, errs.ErrInvariantViolation) // true for a stock < 0 check failure
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.NewInvariantViolationError(ErrDuplicateKey, pgErr.ConstraintName)
		case codeCheckViolation:
			return errs.NewInvariantViolationError(ErrCheckViolation, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return errs.NewInvariantViolationError(ErrForeignKeyViolation, pgErr.ConstraintName)
		case codeNumericValueOutOfRange:
			column := pgErr.ColumnName
			if column == "" {
				column = "value"
			}
			return errs.NewValueIsOutOfRangeErrorWithCause(column, nil, nil, nil, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
