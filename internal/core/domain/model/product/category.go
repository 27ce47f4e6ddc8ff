package product

import (
	"fmt"
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
)

// Category is the closed set of catalog sections a product belongs to.
type Category int

const (
	// UnknownCategory is the zero value and never valid.
	UnknownCategory Category = iota
	Electronics
	Clothing
	Food
	Home
	Toys
	Books
	Other
)

func getCategoryCodes() map[Category]string {
	return map[Category]string{
		UnknownCategory: "UNKNOWN",
		Electronics:     "ELECTRONICS",
		Clothing:        "CLOTHING",
		Food:            "FOOD",
		Home:            "HOME",
		Toys:            "TOYS",
		Books:           "BOOKS",
		Other:           "OTHER",
	}
}

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{Electronics, Clothing, Food, Home, Toys, Books, Other}
}

// ParseCategory resolves a category code case-insensitively, e.g. "electronics".
func ParseCategory(code string) (Category, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Categories() {
		if getCategoryCodes()[c] == normalized {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a known category", code),
	)
}

// Validate rejects UnknownCategory and out-of-range values.
func (c Category) Validate() error {
	if c <= UnknownCategory || c > Other {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the upper-case category code used in storage and over the wire.
func (c Category) String() string {
	if code, ok := getCategoryCodes()[c]; ok {
		return code
	}
	return "UNKNOWN"
}
