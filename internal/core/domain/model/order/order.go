package order

import (
	"errors"
	"fmt"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering domain. It owns its lines and
// keeps the derived total equal to the sum of the line prices.
//
// Invariants:
//   - status is always one of the four valid statuses
//   - total equals the sum of the prices of the attached products
//   - a product is attached at most once
//   - products can be detached and the order cancelled only in PreparingForDelivery
type Order struct {
	id        kernel.UUID
	userID    kernel.UUID
	status    Status
	total     kernel.Money
	lines     []*Line
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order for userID in PreparingForDelivery with one line per
// distinct product. The total is computed from the attached products.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), user.ID(), products, time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status(), o.Total()) // PREPARING_FOR_DELIVERY 25.00
func NewOrder(id, userID kernel.UUID, products []*product.Product, at time.Time) (*Order, error) {
	o := &Order{
		status:    PreparingForDelivery,
		total:     kernel.ZeroMoney(),
		createdAt: at,
		updatedAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
	); err != nil {
		return nil, err
	}

	if _, err := o.AddProducts(products, at); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is kept as is.
func RestoreOrder(
	id, userID kernel.UUID,
	status Status,
	total kernel.Money,
	lines []*Line,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		status.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.total = total
	o.lines = append(make([]*Line, 0, len(lines)), lines...)
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owner of the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

// Lines returns a copy of the attached lines.
func (o *Order) Lines() []*Line {
	out := make([]*Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// ProductIDs returns the identifiers of the attached products in line order.
func (o *Order) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.lines))
	for _, l := range o.lines {
		ids = append(ids, l.ProductID())
	}
	return ids
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// HasProduct reports whether productID is attached.
func (o *Order) HasProduct(productID kernel.UUID) bool {
	for _, l := range o.lines {
		if l.ProductID().IsEqual(productID) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no product is attached.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// IsEligibleForDeletion reports whether the order has no products left while
// still in its initial status.
func (o *Order) IsEligibleForDeletion() bool {
	return o.IsEmpty() && o.status == PreparingForDelivery
}

// ChangeStatus applies a delivery status transition requested by name.
// The name is case-insensitive. On failure the order is left untouched and a
// *errs.InvalidTransitionError is returned.
func (o *Order) ChangeStatus(requested string, at time.Time) error {
	next, err := NextState(o.status, requested)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = at
	return nil
}

// AddProducts attaches every product that is not attached yet and returns how
// many lines were created. It is allowed in every status. The total is
// recomputed only when at least one line was added.
func (o *Order) AddProducts(products []*product.Product, at time.Time) (int, error) {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return 0, err
		}
	}

	added := 0
	for _, p := range products {
		if o.HasProduct(p.ID()) {
			continue
		}

		line, err := NewLine(kernel.NewUUID(), p.ID(), p.Price(), at)
		if err != nil {
			return added, err
		}
		o.lines = append(o.lines, line)
		added++
	}

	if added > 0 {
		o.RecalculateTotal()
		o.updatedAt = at
	}

	return added, nil
}

// RemoveProducts detaches the given products and returns how many lines were
// removed. Only allowed in PreparingForDelivery; otherwise it fails with
// *errs.ProductRemovalNotAllowedError and keeps every line. Callers delete the
// order when IsEligibleForDeletion reports true afterwards.
func (o *Order) RemoveProducts(productIDs []kernel.UUID, at time.Time) (int, error) {
	if o.status != PreparingForDelivery {
		return 0, errs.NewProductRemovalNotAllowedError(o.id.String(), o.status.String())
	}

	kept := make([]*Line, 0, len(o.lines))
	for _, l := range o.lines {
		if !containsID(productIDs, l.ProductID()) {
			kept = append(kept, l)
		}
	}

	removed := len(o.lines) - len(kept)
	o.lines = kept
	o.RecalculateTotal()
	o.updatedAt = at

	return removed, nil
}

// EnsureCancellableBy checks that userID owns the order and that the order is
// still in PreparingForDelivery.
func (o *Order) EnsureCancellableBy(userID kernel.UUID) error {
	if !o.userID.IsEqual(userID) {
		return errs.NewCancellationNotAllowedError(o.id.String(), "requesting user does not own the order")
	}
	if o.status != PreparingForDelivery {
		return errs.NewCancellationNotAllowedError(o.id.String(), fmt.Sprintf("order is %s", o.status))
	}
	return nil
}

// RecalculateTotal sets the total to the sum of the line prices and returns it.
// Calling it repeatedly yields the same total.
func (o *Order) RecalculateTotal() kernel.Money {
	prices := make([]kernel.Money, 0, len(o.lines))
	for _, l := range o.lines {
		prices = append(prices, l.Price())
	}
	o.total = kernel.SumMoney(prices...)
	return o.total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	o.userID = userID
	return nil
}

func containsID(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
