package commands

import (
	"context"
	"time"

	"market/internal/core/domain/services"
)

// AddOrderProductsCommandHandler attaches the requested products that exist
// and are not on the order yet. It works in every delivery status.
type AddOrderProductsCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddOrderProductsCommandHandler(uowFactory UoWFactory) AddOrderProductsCommandHandler {
	return AddOrderProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle skips the write entirely when no new line was added.
func (h AddOrderProductsCommandHandler) Handle(ctx context.Context, cmd AddOrderProductsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return err
	}

	added, err := services.NewProductAttacher().Attach(o, cmd.ProductIDs(), products, time.Now().UTC())
	if err != nil {
		return err
	}
	if added == 0 {
		return nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
