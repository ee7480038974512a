package commands

import (
	"errors"
	"strings"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/user"
	"market/internal/pkg/guard"
)

var ErrUpdateUserContactCommandIsNotConstructed = errors.New(
	"UpdateUserContactCommand must be created via NewUpdateUserContactCommand constructor",
)

// UpdateUserContactCommand changes the email, the phone number or both.
// A nil field is left unchanged.
type UpdateUserContactCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  *string
	phone  *int64

	guard guard.ConstructorGuard
}

func NewUpdateUserContactCommand(userID kernel.UUID, email *string, phone *int64) (UpdateUserContactCommand, error) {
	cmd := UpdateUserContactCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setContact(email, phone),
	); err != nil {
		return UpdateUserContactCommand{}, err
	}

	return cmd, nil
}

func (c UpdateUserContactCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserContactCommandIsNotConstructed)
}

func (c UpdateUserContactCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateUserContactCommand) Email() *string {
	return c.email
}

func (c UpdateUserContactCommand) Phone() *int64 {
	return c.phone
}

func (c *UpdateUserContactCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserContactCommand) setContact(email *string, phone *int64) error {
	if email == nil && phone == nil {
		return user.ErrContactIsRequired
	}

	if email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*email))
		c.email = &normalized
	}
	if phone != nil {
		p := *phone
		c.phone = &p
	}
	return nil
}
