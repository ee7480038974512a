package commands

import (
	"errors"
	"fmt"
	"strings"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
const MaxPasswordLength = 72

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand carries the sign-up form of a new customer. Field level
// validation of names, phone and email is left to the user aggregate.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	firstName string
	lastName  string
	phone     int64
	email     string
	password  string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	firstName, lastName string,
	phone int64,
	email, password string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		email:     strings.TrimSpace(email),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

func (c RegisterUserCommand) Phone() int64 {
	return c.phone
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) > MaxPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("longer than %d bytes", MaxPasswordLength))
	}

	c.password = password
	return nil
}
