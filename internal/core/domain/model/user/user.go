// Package user holds the customer aggregate. Users own orders and receive
// status notifications; users in the admin group may change delivery statuses.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

// AdminGroup grants the right to change delivery statuses.
const AdminGroup = "admin"

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// ErrContactIsRequired is returned by ChangeContact when neither email nor phone is given.
var ErrContactIsRequired = errs.NewValueIsRequiredError("email or phone number")

type User struct {
	id           kernel.UUID
	firstName    string
	lastName     string
	phone        int64
	email        string
	group        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser registers a customer. passwordHash must already be hashed; the
// domain never sees the plain password. The email is lower-cased.
func NewUser(
	id kernel.UUID,
	firstName, lastName string,
	phone int64,
	email, passwordHash string,
	at time.Time,
) (*User, error) {
	u := &User{
		createdAt: at,
		updatedAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setPhone(phone),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user including its group.
func RestoreUser(
	id kernel.UUID,
	firstName, lastName string,
	phone int64,
	email, group, passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u, err := NewUser(id, firstName, lastName, phone, email, passwordHash, createdAt)
	if err != nil {
		return nil, err
	}
	u.group = strings.TrimSpace(group)
	u.updatedAt = updatedAt
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) Phone() int64 {
	return u.phone
}

func (u *User) Email() string {
	return u.email
}

// Group is empty for regular customers.
func (u *User) Group() string {
	return u.group
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsAdmin() bool {
	return u.group == AdminGroup
}

// Owns reports whether userID identifies this user.
func (u *User) Owns(userID kernel.UUID) bool {
	return u.id.IsEqual(userID)
}

// ChangeContact updates the email, the phone number or both. Nil values are
// left unchanged; at least one must be provided. Nothing is changed on error.
func (u *User) ChangeContact(email *string, phone *int64, at time.Time) error {
	if email == nil && phone == nil {
		return ErrContactIsRequired
	}

	next := *u
	var errEmail, errPhone error
	if email != nil {
		errEmail = next.setEmail(*email)
	}
	if phone != nil {
		errPhone = next.setPhone(*phone)
	}
	if err := errors.Join(errEmail, errPhone); err != nil {
		return err
	}

	u.email = next.email
	u.phone = next.phone
	u.updatedAt = at
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFirstName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	u.firstName = name
	return nil
}

func (u *User) setLastName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	u.lastName = name
	return nil
}

func (u *User) setPhone(phone int64) error {
	if phone <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("phone number", fmt.Errorf("%d is not positive", phone))
	}
	u.phone = phone
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an address", email))
	}

	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}
