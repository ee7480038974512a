package commands

import (
	"context"
	"errors"
	"time"

	"market/internal/core/domain/model/user"
	"market/internal/core/ports"
	"market/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler moves an order through the delivery state
// machine and notifies the owner once the new status is committed.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, notifier)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, "in_progress")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // 409, status unchanged
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewChangeOrderStatusCommandHandler expects a notifier that returns quickly,
// such as the asynchronous dispatcher of the notify adapter.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle applies the transition in one transaction. Notification happens
// after commit; its error is discarded and never fails the transition.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	now := time.Now().UTC()
	if err = o.ChangeStatus(cmd.Status(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	owner, err := uow.UserRepository().Get(ctx, o.UserID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if owner != nil {
		_ = h.notifier.Notify(ctx, statusNotification(owner, o.ID().String(), o.Status().String(), now))
	}

	return nil
}

func statusNotification(owner *user.User, orderID, status string, at time.Time) ports.StatusNotification {
	return ports.StatusNotification{
		Email:     owner.Email(),
		OrderID:   orderID,
		FirstName: owner.FirstName(),
		Status:    status,
		ChangedAt: at,
	}
}
