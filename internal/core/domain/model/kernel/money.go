package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Amounts accepted by the constructors fit an exact numeric(19,4) column.
const (
	MaxAmountScale         = 4
	MaxAmountIntegerDigits = 15
)

var maxAmount = decimal.New(1, MaxAmountIntegerDigits).Sub(decimal.New(1, -MaxAmountScale))

var (
	// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney, NewMoneyFromUnit or ZeroMoney")

	// ErrCurrencyMismatch is the rule broken when two amounts in different currencies are combined.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Money is an immutable amount tagged with an ISO 4217 currency.
//
// Invariants:
//   - The amount is never negative
//   - A constructed amount has at most MaxAmountScale decimal places and
//     MaxAmountIntegerDigits integer digits; sums and products are not bounded
//   - Binary operations only combine amounts in the same currency
//
// Every operation returns a new value; the receiver is never modified.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(10), "COP")
//	if err != nil {
//	    return err
//	}
//	total := price.Multiply(3) // 30 COP
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency currency.Unit
	guard    guard.ConstructorGuard
}

// NewMoney creates Money from an amount and a three-letter currency code.
//
// Parameters:
//   - amount: non-negative decimal amount with at most 4 decimal places
//     and 15 integer digits
//   - code: ISO 4217 currency code, case-insensitive (e.g. "COP", "usd");
//     the no-currency codes XXX and XTS are rejected
//
// Returns:
//   - Money: the constructed value
//   - error: ValueIsOutOfRangeError for a negative or too large amount,
//     ValueIsInvalidError for too many decimal places or an unknown currency
//     code; all failures are joined
//
// Example:
//
//	m, err := kernel.NewMoney(decimal.RequireFromString("19.99"), "USD")
func NewMoney(amount decimal.Decimal, code string) (Money, error) {
	unit, currencyErr := parseCurrency(code)
	m := Money{guard: guard.NewConstructorGuard()}

	if err := errors.Join(m.setAmount(amount), currencyErr); err != nil {
		return Money{}, err
	}
	m.currency = unit

	return m, nil
}

// NewMoneyFromUnit creates Money for callers that already hold a parsed currency unit.
func NewMoneyFromUnit(amount decimal.Decimal, unit currency.Unit) (Money, error) {
	return NewMoney(amount, unit.String())
}

// ZeroMoney returns the additive identity for the given currency code.
func ZeroMoney(code string) (Money, error) {
	return NewMoney(decimal.Zero, code)
}

// ZeroMoneyIn returns the additive identity for an already parsed currency unit.
func ZeroMoneyIn(unit currency.Unit) Money {
	return Money{
		amount:   decimal.Zero,
		currency: unit,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate reports whether the value was built by one of the constructors.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency unit.
func (m Money) Currency() currency.Unit {
	return m.currency
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts numerically and currencies by code, so 10 and 10.00
// in the same currency are equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// SameCurrency reports whether both values carry the same currency.
func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

// Add returns the sum of two amounts in the same currency.
//
// Returns:
//   - Money: receiver plus other, in the shared currency
//   - error: an InvariantViolationError wrapping ErrCurrencyMismatch when the
//     currencies differ, or the constructor error of an invalid operand
//
// Example:
//
//	ten, _ := kernel.NewMoney(decimal.NewFromInt(10), "COP")
//	five, _ := kernel.NewMoney(decimal.NewFromInt(5), "USD")
//	_, err := ten.Add(five) // errors.Is(err, kernel.ErrCurrencyMismatch) == true
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if !m.SameCurrency(other) {
		return Money{}, errs.NewInvariantViolationError(
			ErrCurrencyMismatch,
			fmt.Sprintf("cannot add %s to %s", other.currency, m.currency),
		)
	}

	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Multiply scales the amount by a non-negative integer factor.
// A negative factor would produce a negative amount and is rejected.
func (m Money) Multiply(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("factor", factor, 0, "unbounded")
	}

	return Money{
		amount:   m.amount.Mul(decimal.NewFromInt(int64(factor))),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// String renders the amount followed by the currency code, e.g. "35 COP".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency.String())
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() || amount.GreaterThan(maxAmount) {
		return errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, maxAmount.String())
	}
	if !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d decimal places", amount, MaxAmountScale))
	}
	m.amount = amount
	return nil
}

func parseCurrency(code string) (currency.Unit, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return currency.Unit{}, errs.NewValueIsRequiredError("currency")
	}
	unit, err := currency.ParseISO(normalized)
	if err != nil {
		return currency.Unit{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not an ISO 4217 currency code: %w", code, err))
	}
	if unit == currency.XXX || unit == currency.XTS {
		return currency.Unit{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q does not name a currency", code))
	}
	return unit, nil
}
