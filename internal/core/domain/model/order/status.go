package order

import (
	"fmt"
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──confirm──> Confirmed ──ship──> Shipped ──deliver──> Delivered
//	   │
//	   └── add item / remove item (stays Pending)
//
// There is no cancellation and no way back. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Only pending orders accept item changes.
	Pending

	// Confirmed indicates the customer confirmed the order.
	Confirmed

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered is the final state with no further transitions allowed.
	Delivered
)

// Action is an operation requested on an order.
type Action int

const (
	UnknownAction Action = iota
	Confirm
	Ship
	Deliver
	AddItem
	RemoveItem
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
	}
}

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction: "unknown",
		Confirm:       "confirm",
		Ship:          "ship",
		Deliver:       "deliver",
		AddItem:       "add item",
		RemoveItem:    "remove item",
	}
}

// getTransitions returns the complete transition table. A (status, action) pair
// that is absent is an invalid transition.
func getTransitions() map[Status]map[Action]Status {
	return map[Status]map[Action]Status{
		Pending: {
			Confirm:    Confirmed,
			AddItem:    Pending,
			RemoveItem: Pending,
		},
		Confirmed: {
			Ship: Shipped,
		},
		Shipped: {
			Deliver: Delivered,
		},
	}
}

// ParseStatus resolves a status code such as "PENDING", case-insensitively.
func ParseStatus(code string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for s, str := range getStatusStrings() {
		if s != Unknown && str == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate checks if the Status value is one of Pending, Confirmed, Shipped or Delivered.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError for Unknown and any other value
//
// This is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status code, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether no action is allowed from s.
func (s Status) IsFinal() bool {
	return len(getTransitions()[s]) == 0
}

// Next looks up the status reached by applying action to s.
//
// Returns:
//   - (next status, nil) when the table allows the transition
//   - (Unknown, InvalidTransitionError) otherwise
//
// Example:
//
//	next, err := order.Pending.Next(order.Confirm) // Confirmed, nil
//	_, err = order.Pending.Next(order.Ship)        // invalid transition: cannot ship from PENDING
func (s Status) Next(action Action) (Status, error) {
	next, ok := getTransitions()[s][action]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s.String(), action.String())
	}
	return next, nil
}

// ParseAction resolves a lifecycle action code: "confirm", "ship" or "deliver".
func ParseAction(code string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for _, a := range []Action{Confirm, Ship, Deliver} {
		if getActionStrings()[a] == normalized {
			return a, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a lifecycle action", code))
}

// IsLifecycle reports whether the action moves the order to another status.
func (a Action) IsLifecycle() bool {
	return a == Confirm || a == Ship || a == Deliver
}

func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
