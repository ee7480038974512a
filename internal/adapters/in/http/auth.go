package http

import (
	"context"
	"errors"
	"net/http"

	"market/internal/adapters/in/http/api"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/user"
	"market/internal/core/ports"
	"market/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const userContextKey = "market.user"

// UserFinder looks a user up by login email.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// UserFinderFunc adapts a function to UserFinder.
type UserFinderFunc func(ctx context.Context, email string) (*user.User, error)

func (f UserFinderFunc) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return f(ctx, email)
}

// Authenticator checks basic auth credentials (email and password) against
// the stored bcrypt hash.
type Authenticator struct {
	users  UserFinder
	hasher ports.PasswordHasher
}

func NewAuthenticator(users UserFinder, hasher ports.PasswordHasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

// Middleware requires credentials on every route except registration.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodPost && c.Path() == api.BaseURL+"/users"
		},
		Validator: a.validate,
		Realm:     "market",
	})
}

func (a *Authenticator) validate(email, password string, c echo.Context) (bool, error) {
	u, err := a.users.GetByEmail(c.Request().Context(), email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = a.hasher.Compare(u.PasswordHash(), password); err != nil {
		return false, nil
	}

	c.Set(userContextKey, u)
	return true, nil
}

func currentUser(c echo.Context) (*user.User, error) {
	u, ok := c.Get(userContextKey).(*user.User)
	if !ok || u == nil {
		return nil, echo.ErrUnauthorized
	}
	return u, nil
}

// authorizeUser lets users act on their own account; admins act on any.
func authorizeUser(c echo.Context, userID kernel.UUID) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	if u.IsAdmin() || u.ID().IsEqual(userID) {
		return nil
	}
	return errForbidden
}

func requireAdmin(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	if !u.IsAdmin() {
		return errForbidden
	}
	return nil
}
