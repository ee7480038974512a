// Package http is the inbound REST adapter. It translates requests of the
// OpenAPI contract in package api into commands and queries.
package http

import (
	"context"
	"net/http"

	"market/internal/adapters/in/http/api"
	"market/internal/core/application/usecases/commands"
	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type commandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type queryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterUser        commandHandler[commands.RegisterUserCommand]
	UpdateUserContact   commandHandler[commands.UpdateUserContactCommand]
	CreateOrder         commandHandler[commands.CreateOrderCommand]
	CancelOrder         commandHandler[commands.CancelOrderCommand]
	ChangeOrderStatus   commandHandler[commands.ChangeOrderStatusCommand]
	AddOrderProducts    commandHandler[commands.AddOrderProductsCommand]
	RemoveOrderProducts commandHandler[commands.RemoveOrderProductsCommand]

	GetUser          queryHandler[queries.GetUserQuery, queries.GetUserQueryResponse]
	GetUserOrders    queryHandler[queries.GetUserOrdersQuery, queries.Page[queries.OrderSummary]]
	GetOrder         queryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	GetOrderProducts queryHandler[queries.GetOrderProductsQuery, queries.Page[queries.ProductView]]
	GetProducts      queryHandler[queries.GetProductsQuery, queries.Page[queries.ProductView]]
}

// Server implements api.ServerInterface.
type Server struct {
	h Handlers
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// RegisterUser handles POST /users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body api.NewUser
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		body.FirstName,
		body.LastName,
		body.PhoneNumber,
		body.Email,
		body.Password,
	)
	if err != nil {
		return err
	}

	if err = s.h.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, api.Created{Id: userID.Bytes()})
}

// GetUser handles GET /users/{userId}.
func (s *Server) GetUser(ctx echo.Context, userId openapi_types.UUID) error {
	userID, err := toKernel(userId)
	if err != nil {
		return err
	}

	if err = authorizeUser(ctx, userID); err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return err
	}

	u, err := s.h.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.User{
		Id:          u.ID.Bytes(),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Group:       u.Group,
		CreatedAt:   u.CreatedAt,
	})
}

// UpdateUserContact handles PATCH /users/{userId}.
func (s *Server) UpdateUserContact(ctx echo.Context, userId openapi_types.UUID) error {
	userID, err := toKernel(userId)
	if err != nil {
		return err
	}

	if err = authorizeUser(ctx, userID); err != nil {
		return err
	}

	var body api.ContactUpdate
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateUserContactCommand(userID, body.Email, body.PhoneNumber)
	if err != nil {
		return err
	}

	if err = s.h.UpdateUserContact.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /users/{userId}/orders.
func (s *Server) CreateOrder(ctx echo.Context, userId openapi_types.UUID) error {
	userID, err := toKernel(userId)
	if err != nil {
		return err
	}

	if err = authorizeUser(ctx, userID); err != nil {
		return err
	}

	var body api.ProductIDs
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	productIDs, err := toKernelList(body.ProductIds)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, productIDs)
	if err != nil {
		return err
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, api.Created{Id: orderID.Bytes()})
}

// GetUserOrders handles GET /users/{userId}/orders.
func (s *Server) GetUserOrders(ctx echo.Context, userId openapi_types.UUID, params api.PageParams) error {
	userID, err := toKernel(userId)
	if err != nil {
		return err
	}

	if err = authorizeUser(ctx, userID); err != nil {
		return err
	}

	query, err := queries.NewGetUserOrdersQuery(userID, pageOrFirst(params.Page))
	if err != nil {
		return err
	}

	page, err := s.h.GetUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	data := make([]api.OrderSummary, 0, len(page.Data))
	for _, o := range page.Data {
		data = append(data, toOrderSummary(o))
	}

	return ctx.JSON(http.StatusOK, api.OrderPage{Count: page.Count, Data: data})
}

// CancelOrder handles DELETE /users/{userId}/orders/{orderId}. The
// authenticated user is the one asking to cancel.
func (s *Server) CancelOrder(ctx echo.Context, userId openapi_types.UUID, orderId openapi_types.UUID) error {
	userID, err := toKernel(userId)
	if err != nil {
		return err
	}

	orderID, err := toKernel(orderId)
	if err != nil {
		return err
	}

	if err = authorizeUser(ctx, userID); err != nil {
		return err
	}

	requester, err := currentUser(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, requester.ID())
	if err != nil {
		return err
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := toKernel(orderId)
	if err != nil {
		return err
	}

	o, err := s.authorizeOrder(ctx, orderID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.Order{
		OrderSummary: api.OrderSummary{
			Id:           o.ID.Bytes(),
			Status:       o.Status,
			Total:        o.Total.String(),
			ProductCount: o.ProductCount,
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
		},
		Owner: api.Owner{
			Id:        o.Owner.ID.Bytes(),
			FirstName: o.Owner.FirstName,
			LastName:  o.Owner.LastName,
			Email:     o.Owner.Email,
		},
	})
}

// ChangeOrderStatus handles POST /orders/{orderId}. Only admins may move
// orders between statuses.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	orderID, err := toKernel(orderId)
	if err != nil {
		return err
	}

	var body api.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, body.Status)
	if err != nil {
		return err
	}

	if err = s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderProducts handles GET /orders/{orderId}/products.
func (s *Server) GetOrderProducts(ctx echo.Context, orderId openapi_types.UUID, params api.PageParams) error {
	orderID, err := toKernel(orderId)
	if err != nil {
		return err
	}

	if _, err = s.authorizeOrder(ctx, orderID); err != nil {
		return err
	}

	query, err := queries.NewGetOrderProductsQuery(orderID, pageOrFirst(params.Page))
	if err != nil {
		return err
	}

	page, err := s.h.GetOrderProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toProductPage(page))
}

// AddOrderProducts handles POST /orders/{orderId}/products.
func (s *Server) AddOrderProducts(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := toKernel(orderId)
	if err != nil {
		return err
	}

	if _, err = s.authorizeOrder(ctx, orderID); err != nil {
		return err
	}

	var body api.ProductIDs
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	productIDs, err := toKernelList(body.ProductIds)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderProductsCommand(orderID, productIDs)
	if err != nil {
		return err
	}

	if err = s.h.AddOrderProducts.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderProducts handles DELETE /orders/{orderId}/products.
func (s *Server) RemoveOrderProducts(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params api.RemoveOrderProductsParams,
) error {
	orderID, err := toKernel(orderId)
	if err != nil {
		return err
	}

	if _, err = s.authorizeOrder(ctx, orderID); err != nil {
		return err
	}

	productIDs, err := toKernelList(params.ProductIds)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveOrderProductsCommand(orderID, productIDs)
	if err != nil {
		return err
	}

	if err = s.h.RemoveOrderProducts.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /products.
func (s *Server) GetProducts(ctx echo.Context, params api.GetProductsParams) error {
	name := ""
	if params.Name != nil {
		name = *params.Name
	}

	query, err := queries.NewGetProductsQuery(pageOrFirst(params.Page), name)
	if err != nil {
		return err
	}

	page, err := s.h.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toProductPage(page))
}

// authorizeOrder loads the order and lets its owner or an admin through.
func (s *Server) authorizeOrder(ctx echo.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	if err = authorizeUser(ctx, o.Owner.ID); err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	return o, nil
}
