package http

import (
	"errors"
	"net/http"

	"market/internal/adapters/in/http/api"
	"market/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errForbidden = errors.New("access denied")

// statusFor maps application errors to HTTP status codes. Unknown errors
// are internal.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errForbidden), errors.Is(err, errs.ErrCancellationNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrProductRemovalNotAllowed),
		errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	return err.Error()
}

// newErrorHandler renders every error as api.Error. Internal errors are
// logged by the request logger and never leak their text.
func newErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := statusFor(err)
		body := api.Error{Code: status, Message: messageFor(err, status)}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
