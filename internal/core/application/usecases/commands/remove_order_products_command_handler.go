package commands

import (
	"context"
	"time"
)

// RemoveOrderProductsCommandHandler detaches products from an order that is
// still PREPARING_FOR_DELIVERY. An order left without products is deleted.
//
// Example:
//
//	handler := NewRemoveOrderProductsCommandHandler(uowFactory)
//	cmd, _ := NewRemoveOrderProductsCommand(orderID, []kernel.UUID{productA})
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrProductRemovalNotAllowed) {
//	    // the order already left the warehouse
//	}
type RemoveOrderProductsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveOrderProductsCommandHandler(uowFactory OrderUoWFactory) RemoveOrderProductsCommandHandler {
	return RemoveOrderProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveOrderProductsCommandHandler) Handle(ctx context.Context, cmd RemoveOrderProductsCommand) error {
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

	if _, err = o.RemoveProducts(cmd.ProductIDs(), time.Now().UTC()); err != nil {
		return err
	}

	if o.IsEligibleForDeletion() {
		err = orderRepo.Delete(ctx, o.ID())
	} else {
		err = orderRepo.Update(ctx, o)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
