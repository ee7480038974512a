package http

import (
	"errors"
	"net/http"
	"strings"

	"market/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// newRequestValidator checks requests under api.BaseURL against the
// embedded OpenAPI document. Paths in the document are relative to the
// base URL. Authentication is handled by Authenticator, not here.
func newRequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	doc := *swagger
	doc.Servers = nil

	router, err := legacy.NewRouter(&doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			routed := req.Clone(req.Context())
			routed.URL.Path = strings.TrimPrefix(req.URL.Path, api.BaseURL)
			routed.URL.RawPath = ""

			route, pathParams, err := router.FindRoute(routed)
			if err != nil {
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					return echo.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
				}
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	switch e := err.(type) {
	case *openapi3filter.RequestError:
		return strings.SplitN(e.Error(), "\n", 2)[0]
	case *openapi3filter.SecurityRequirementsError:
		return "security requirements failed"
	default:
		return err.Error()
	}
}
