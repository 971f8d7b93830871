// Package http exposes the order lifecycle operations over REST using echo.
// Handlers translate between JSON payloads and application commands/queries,
// mapping the typed application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned by all handlers.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItemRequest is one line of an order creation request.
// UnitPrice is a decimal string such as "9.99".
type NewOrderItemRequest struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// NewOrderRequest is the payload of POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerName string                `json:"customerName"`
	Items        []NewOrderItemRequest `json:"items"`
}

// UpdateStatusRequest is the payload of PUT /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one line of an order in API responses.
type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customerName"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersHandler:         getOrdersHandler,
	}
}

// RegisterRoutes attaches all order routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new Pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]commands.CreateOrderItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := kernel.PriceFromString(item.UnitPrice)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
		}
		items = append(items, commands.CreateOrderItemSpec{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.CustomerName, items)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryToResponse(resp))
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by a ?status=S query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	var query queries.GetOrdersQuery

	if statusName := ctx.QueryParam("status"); statusName != "" {
		status, err := order.StatusFromString(statusName)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+statusName)
		}
		query, err = queries.NewGetOrdersQueryWithStatus(status)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+statusName)
		}
	} else {
		query = queries.NewGetOrdersQuery()
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, queryToResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - administrative
// status override.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels a Pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to load cancelled order")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryToResponse(resp))
}

// mapError translates application errors to HTTP status codes:
// validation -> 400, unknown object -> 404, state conflict -> 409,
// everything else -> 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidState):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
		})
	}

	return OrderResponse{
		ID:           aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        items,
	}
}

func queryToResponse(resp queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
		})
	}

	return OrderResponse{
		ID:           resp.ID.String(),
		CustomerName: resp.CustomerName,
		Status:       resp.Status.String(),
		CreatedAt:    resp.CreatedAt,
		Items:        items,
	}
}
