package order

import (
	"fmt"
	"strings"

	"market/internal/pkg/errs"
)

// Status is the delivery status of an order.
//
// Transitions:
//
//	PREPARING_FOR_DELIVERY ──┬──> IN_PROGRESS ──> DELIVERED
//	                         │
//	                         └──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Any pair missing from the table,
// including PREPARING_FOR_DELIVERY -> DELIVERED, is rejected.
type Status int

const (
	// Unknown is the zero value and never a valid stored status.
	Unknown Status = iota

	// PreparingForDelivery is the initial status. Products can be removed and the
	// order can be cancelled by its owner only while it is in this status.
	PreparingForDelivery

	// InProgress means the order left the warehouse.
	InProgress

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal. It is reached only through a status change; deleting
	// an order through CancelOrder does not pass through it.
	Cancelled
)

const unknownStatusName = "UNKNOWN"

var statusNames = map[Status]string{
	PreparingForDelivery: "PREPARING_FOR_DELIVERY",
	InProgress:           "IN_PROGRESS",
	Delivered:            "DELIVERED",
	Cancelled:            "CANCELLED",
}

// transitions lists the allowed targets per source status.
var transitions = map[Status][]Status{
	PreparingForDelivery: {InProgress, Cancelled},
	InProgress:           {Delivered},
	Delivered:            {},
	Cancelled:            {},
}

// ParseStatus converts a case-insensitive name into a Status.
//
// Example:
//
//	s, err := order.ParseStatus("in_progress") // order.InProgress, nil
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for s, n := range statusNames {
		if n == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", name),
	)
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{PreparingForDelivery, InProgress, Delivered, Cancelled}
}

// Validate rejects Unknown and out-of-range values, e.g. a corrupted column.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-case name used on the wire and in storage.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return unknownStatusName
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitions[s]) == 0
}

// AllowedTargets returns the statuses reachable from s in one step.
func (s Status) AllowedTargets() []Status {
	targets := transitions[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether (s, target) is in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// NextState resolves a requested status name against the transition table.
// It fails with *errs.InvalidTransitionError when the name is unknown, equals
// the current status, or the pair is not in the table.
func NextState(current Status, requested string) (Status, error) {
	target, err := ParseStatus(requested)
	if err != nil {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(current.String(), requested, err)
	}

	if target == current {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			current.String(),
			target.String(),
			fmt.Errorf("order is already %s", current),
		)
	}

	if !current.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(current.String(), target.String())
	}

	return target, nil
}
