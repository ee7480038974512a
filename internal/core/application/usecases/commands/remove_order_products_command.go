package commands

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

var ErrRemoveOrderProductsCommandIsNotConstructed = errors.New(
	"RemoveOrderProductsCommand must be created via NewRemoveOrderProductsCommand constructor",
)

// RemoveOrderProductsCommand requests detaching products from an order.
type RemoveOrderProductsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	productIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOrderProductsCommand(orderID kernel.UUID, productIDs []kernel.UUID) (RemoveOrderProductsCommand, error) {
	cmd := RemoveOrderProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return RemoveOrderProductsCommand{}, err
	}

	return cmd, nil
}

func (c RemoveOrderProductsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderProductsCommandIsNotConstructed)
}

func (c RemoveOrderProductsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemoveOrderProductsCommand) ProductIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.productIDs...)
}

func (c *RemoveOrderProductsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderProductsCommand) setProductIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("product ids")
	}
	if err := validateIDs(ids); err != nil {
		return err
	}

	c.productIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
