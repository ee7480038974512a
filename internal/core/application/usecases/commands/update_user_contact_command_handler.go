package commands

import (
	"context"
	"time"
)

// UpdateUserContactCommandHandler changes the contact details of a user.
type UpdateUserContactCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserContactCommandHandler(uowFactory UserUoWFactory) UpdateUserContactCommandHandler {
	return UpdateUserContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with *errs.ObjectNotFoundError for an unknown user and with
// *errs.AlreadyExistsError when the new email belongs to someone else.
func (h UpdateUserContactCommandHandler) Handle(ctx context.Context, cmd UpdateUserContactCommand) error {
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

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if email := cmd.Email(); email != nil && *email != u.Email() {
		if err = ensureEmailIsFree(ctx, userRepo, *email); err != nil {
			return err
		}
	}

	if err = u.ChangeContact(cmd.Email(), cmd.Phone(), time.Now().UTC()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
