package commands_test

import (
	"context"
	"errors"
	"testing"

	"market/internal/core/application/usecases/commands"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/ports"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	owner := fixtureUser(t)
	o := fixtureOrder(t, owner.ID(), fixtureProduct(t, "10"))
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "in_progress")

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.StatusNotification) bool {
			return n.Email == "ada@example.com" &&
				n.FirstName == "Ada" &&
				n.OrderID == o.ID().String() &&
				n.Status == "IN_PROGRESS" &&
				!n.ChangedAt.IsZero()
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, o.Status())
	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_NotifierFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	owner := fixtureUser(t)
	o := fixtureOrder(t, owner.ID())
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "CANCELLED")

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	orderRepo.On("Update", ctx, o).Return(nil)
	userRepo.On("Get", ctx, owner.ID()).Return(owner, nil)
	notifier.On("Notify", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	notifier.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	o := fixtureOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "DELIVERED")

	orderRepo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.PreparingForDelivery, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, "IN_PROGRESS")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_MissingOwnerSkipsNotification(t *testing.T) {
	ctx := context.Background()
	o := fixtureOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "IN_PROGRESS")

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	orderRepo.On("Update", ctx, o).Return(nil)
	userRepo.On("Get", ctx, o.UserID()).Return(nil, errs.NewObjectNotFoundError("user", o.UserID().String()))

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CommitErrorSkipsNotification(t *testing.T) {
	ctx := context.Background()
	owner := fixtureUser(t)
	o := fixtureOrder(t, owner.ID())
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "IN_PROGRESS")

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	orderRepo.On("Update", ctx, o).Return(nil)
	userRepo.On("Get", ctx, owner.ID()).Return(owner, nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewChangeOrderStatusCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
