package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

var ErrAddOrderProductsCommandIsNotConstructed = errors.New(
	"AddOrderProductsCommand must be created via NewAddOrderProductsCommand constructor",
)

// AddOrderProductsCommand requests attaching catalog products to an order.
type AddOrderProductsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	productIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddOrderProductsCommand(orderID kernel.UUID, productIDs []kernel.UUID) (AddOrderProductsCommand, error) {
	cmd := AddOrderProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return AddOrderProductsCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderProductsCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderProductsCommandIsNotConstructed)
}

func (c AddOrderProductsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderProductsCommand) ProductIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.productIDs...)
}

func (c *AddOrderProductsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderProductsCommand) setProductIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("product ids")
	}
	if err := validateIDs(ids); err != nil {
		return err
	}

	c.productIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
