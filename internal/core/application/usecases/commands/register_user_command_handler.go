package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"market/internal/core/domain/model/user"
	"market/internal/core/ports"
	"market/internal/pkg/errs"
)

// RegisterUserCommandHandler creates a customer account with a hashed password.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle fails with *errs.AlreadyExistsError when the email is taken.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	u, err := user.NewUser(
		cmd.UserID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Phone(),
		cmd.Email(),
		hash,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if err = ensureEmailIsFree(ctx, userRepo, u.Email()); err != nil {
		return err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureEmailIsFree(ctx context.Context, repo ports.UserRepository, email string) error {
	_, err := repo.GetByEmail(ctx, strings.ToLower(email))
	switch {
	case err == nil:
		return errs.NewAlreadyExistsError("email", email)
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return err
	}
}
