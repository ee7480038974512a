package services

import (
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/product"
	"market/internal/core/domain/model/user"
)

// ProductAttacher is a domain service that links catalog products to orders.
//
// Business rules:
//   - Only an existing, valid user can place an order
//   - Requested ids without a catalog entry are skipped silently
//   - A product is attached to an order at most once
//   - Attaching is allowed in every delivery status
//
// Example usage:
//
//	attacher := services.NewProductAttacher()
//	o, err := attacher.Place(kernel.NewUUID(), owner, requestedIDs, found, time.Now().UTC())
//	if err != nil {
//	    return err
//	}
type ProductAttacher struct{}

func NewProductAttacher() ProductAttacher {
	return ProductAttacher{}
}

// Place creates a new order for owner holding every requested product found
// in the catalog. The order may end up empty when nothing was found.
func (a ProductAttacher) Place(
	orderID kernel.UUID,
	owner *user.User,
	requested []kernel.UUID,
	found []*product.Product,
	at time.Time,
) (*order.Order, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	products, err := a.selectRequested(requested, found)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(orderID, owner.ID(), products, at)
}

// Attach adds every requested product found in the catalog that is not on the
// order yet and returns the number of new lines.
func (a ProductAttacher) Attach(
	o *order.Order,
	requested []kernel.UUID,
	found []*product.Product,
	at time.Time,
) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	products, err := a.selectRequested(requested, found)
	if err != nil {
		return 0, err
	}

	return o.AddProducts(products, at)
}

// selectRequested keeps the found products whose id was requested, in request
// order and without duplicates.
func (a ProductAttacher) selectRequested(requested []kernel.UUID, found []*product.Product) ([]*product.Product, error) {
	byID := make(map[kernel.UUID]*product.Product, len(found))
	for _, p := range found {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	selected := make([]*product.Product, 0, len(requested))
	seen := make(map[kernel.UUID]struct{}, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if p, ok := byID[id]; ok {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
