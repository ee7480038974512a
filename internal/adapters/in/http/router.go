package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"market/internal/adapters/in/http/api"
	"market/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwaggerOnce sync.Once

func registerSwagger() error {
	swagger, err := api.GetSwagger()
	if err != nil {
		return err
	}

	data, err := json.Marshal(swagger)
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}

// NewRouter builds the echo instance: ops endpoints at the root and the
// market API under api.BaseURL, behind basic auth and request validation.
func NewRouter(server *Server, auth *Authenticator, m *metrics.Metrics, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := newRequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	if err = registerSwagger(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newErrorHandler()

	e.Use(middleware.Recover())
	e.Use(metricsMiddleware(m))
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group(api.BaseURL, auth.Middleware(), validator)
	api.RegisterHandlersWithBaseURL(g, server, "")

	return e, nil
}
