package kernel

import (
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

// ErrEmailIsNotConstructed is returned when a zero-value Email is validated.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

var validate = validator.New()

// Email is a syntactically valid e-mail address.
//
// Example:
//
//	email, err := kernel.NewEmail("ana@arka.co")
type Email struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmail trims surrounding whitespace and validates the address.
//
// Returns:
//   - Email: the validated address
//   - error: ValueIsRequiredError for blank input, ValueIsInvalidError otherwise
func NewEmail(address string) (Email, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if err := validate.Var(address, "email"); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{value: address, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.value
}

// IsEqual compares addresses case-insensitively.
func (e Email) IsEqual(other Email) bool {
	return strings.EqualFold(e.value, other.value)
}
