package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operation of the contract.
type ServerInterface interface {
	RegisterUser(ctx echo.Context) error
	GetUser(ctx echo.Context, userId openapi_types.UUID) error
	UpdateUserContact(ctx echo.Context, userId openapi_types.UUID) error
	CreateOrder(ctx echo.Context, userId openapi_types.UUID) error
	GetUserOrders(ctx echo.Context, userId openapi_types.UUID, params PageParams) error
	CancelOrder(ctx echo.Context, userId openapi_types.UUID, orderId openapi_types.UUID) error
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	GetOrderProducts(ctx echo.Context, orderId openapi_types.UUID, params PageParams) error
	AddOrderProducts(ctx echo.Context, orderId openapi_types.UUID) error
	RemoveOrderProducts(ctx echo.Context, orderId openapi_types.UUID, params RemoveOrderProductsParams) error
	GetProducts(ctx echo.Context, params GetProductsParams) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPath(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindPage(ctx echo.Context) (*int, error) {
	var page *int
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &page); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	return page, nil
}

func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	return w.Handler.RegisterUser(ctx)
}

func (w *ServerInterfaceWrapper) GetUser(ctx echo.Context) error {
	userID, err := bindPath(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.GetUser(ctx, userID)
}

func (w *ServerInterfaceWrapper) UpdateUserContact(ctx echo.Context) error {
	userID, err := bindPath(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateUserContact(ctx, userID)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	userID, err := bindPath(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.CreateOrder(ctx, userID)
}

func (w *ServerInterfaceWrapper) GetUserOrders(ctx echo.Context) error {
	userID, err := bindPath(ctx, "userId")
	if err != nil {
		return err
	}

	page, err := bindPage(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetUserOrders(ctx, userID, PageParams{Page: page})
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	userID, err := bindPath(ctx, "userId")
	if err != nil {
		return err
	}

	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, userID, orderID)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderProducts(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}

	page, err := bindPage(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderProducts(ctx, orderID, PageParams{Page: page})
}

func (w *ServerInterfaceWrapper) AddOrderProducts(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddOrderProducts(ctx, orderID)
}

func (w *ServerInterfaceWrapper) RemoveOrderProducts(ctx echo.Context) error {
	orderID, err := bindPath(ctx, "orderId")
	if err != nil {
		return err
	}

	var params RemoveOrderProductsParams
	if err = runtime.BindQueryParameter("form", false, true, "product_ids", ctx.QueryParams(), &params.ProductIds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter product_ids: %s", err))
	}
	return w.Handler.RemoveOrderProducts(ctx, orderID, params)
}

func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	var params GetProductsParams

	page, err := bindPage(ctx)
	if err != nil {
		return err
	}
	params.Page = page

	if err = runtime.BindQueryParameter("form", true, false, "name", ctx.QueryParams(), &params.Name); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}
	return w.Handler.GetProducts(ctx, params)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL. Pass an
// empty baseURL when router is a group that already carries the prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/users", w.RegisterUser)
	router.GET(baseURL+"/users/:userId", w.GetUser)
	router.PATCH(baseURL+"/users/:userId", w.UpdateUserContact)
	router.POST(baseURL+"/users/:userId/orders", w.CreateOrder)
	router.GET(baseURL+"/users/:userId/orders", w.GetUserOrders)
	router.DELETE(baseURL+"/users/:userId/orders/:orderId", w.CancelOrder)
	router.GET(baseURL+"/orders/:orderId", w.GetOrder)
	router.POST(baseURL+"/orders/:orderId", w.ChangeOrderStatus)
	router.GET(baseURL+"/orders/:orderId/products", w.GetOrderProducts)
	router.POST(baseURL+"/orders/:orderId/products", w.AddOrderProducts)
	router.DELETE(baseURL+"/orders/:orderId/products", w.RemoveOrderProducts)
	router.GET(baseURL+"/products", w.GetProducts)
}
