package commands

import (
	"context"
)

// PurgeEmptyOrdersCommandHandler removes orders eligible for deletion in a
// single transaction.
type PurgeEmptyOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPurgeEmptyOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeEmptyOrdersCommandHandler {
	return PurgeEmptyOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of deleted orders. Orders returned by the
// repository that are no longer eligible are skipped.
func (h PurgeEmptyOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeEmptyOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetEmptyInPreparing(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, o := range orders {
		if !o.IsEligibleForDeletion() {
			continue
		}
		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return 0, err
		}
		purged++
	}

	if purged == 0 {
		return 0, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
