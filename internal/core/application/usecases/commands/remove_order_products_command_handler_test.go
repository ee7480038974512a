package commands_test

import (
	"context"
	"testing"

	"market/internal/core/application/usecases/commands"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderProductsCommandHandler_Handle_UpdatesRemainingOrder(t *testing.T) {
	ctx := context.Background()
	a, b := fixtureProduct(t, "10"), fixtureProduct(t, "15")
	o := fixtureOrder(t, kernel.NewUUID(), a, b)
	cmd, _ := commands.NewRemoveOrderProductsCommand(o.ID(), []kernel.UUID{a.ID()})

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := commands.NewRemoveOrderProductsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "15.00", o.Total().String())
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRemoveOrderProductsCommandHandler_Handle_DeletesEmptyOrder(t *testing.T) {
	ctx := context.Background()
	b := fixtureProduct(t, "15")
	o := fixtureOrder(t, kernel.NewUUID(), b)
	cmd, _ := commands.NewRemoveOrderProductsCommand(o.ID(), []kernel.UUID{b.ID()})

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Delete", ctx, o.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := commands.NewRemoveOrderProductsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.IsEligibleForDeletion())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRemoveOrderProductsCommandHandler_Handle_NotAllowed(t *testing.T) {
	for _, status := range []string{"IN_PROGRESS", "CANCELLED"} {
		t.Run(status, func(t *testing.T) {
			ctx := context.Background()
			a := fixtureProduct(t, "10")
			o := fixtureOrder(t, kernel.NewUUID(), a)
			require.NoError(t, o.ChangeStatus(status, fixtureTime))
			cmd, _ := commands.NewRemoveOrderProductsCommand(o.ID(), []kernel.UUID{a.ID()})

			orderRepo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(orderRepo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			err := commands.NewRemoveOrderProductsCommandHandler(factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrProductRemovalNotAllowed)
			assert.Len(t, o.Lines(), 1)
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}
