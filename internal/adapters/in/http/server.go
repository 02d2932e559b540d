package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ordersheet/internal/core/application/usecases/commands"
	"ordersheet/internal/core/application/usecases/queries"
	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Operation names used in logs and metrics.
const (
	opGetInitData  = "getInitData"
	opGetOrderData = "getOrderData"
	opSaveData     = "saveData"
	opUpdateOrder  = "updateOrder"
	opDeleteOrder  = "deleteOrder"
)

// Server implements the ServerInterface for handling HTTP requests.
// Every response body is a servers.Envelope; errors never escape as echo errors.
type Server struct {
	// Command handlers
	saveOrderHandler   commands.SaveOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getInitDataHandler queries.GetInitDataQueryHandler

	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	saveOrderHandler commands.SaveOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getInitDataHandler queries.GetInitDataQueryHandler,
	metrics *Metrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		saveOrderHandler:   saveOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		getOrdersHandler:   getOrdersHandler,
		getInitDataHandler: getInitDataHandler,
		metrics:            metrics,
		logger:             logger.With("component", "http"),
	}
}

// GetInitData handles GET /api/v1/init-data - reads the product and courier lists.
func (s *Server) GetInitData(ctx echo.Context) error {
	started := time.Now()

	resp, err := s.getInitDataHandler.Handle(ctx.Request().Context(), queries.NewGetInitDataQuery())
	if err != nil {
		return s.fail(ctx, opGetInitData, started, err, "", nil)
	}

	return s.succeed(ctx, opGetInitData, started, http.StatusOK, msgLoaded, servers.InitData{
		Products: resp.Products,
		Couriers: resp.Couriers,
	})
}

// GetOrders handles GET /api/v1/orders - lists orders newest first.
// On failure data is an empty list rather than null.
func (s *Server) GetOrders(ctx echo.Context) error {
	started := time.Now()

	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return s.fail(ctx, opGetOrderData, started, err, "", []servers.Order{})
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		items := make([]servers.Item, len(v.Items))
		for j, it := range v.Items {
			items[j] = servers.Item{Name: it.Name, Qty: it.Qty}
		}

		response[i] = servers.Order{
			OrderNo:       v.OrderNo,
			Date:          v.Date,
			SetName:       v.SetName,
			PageNo:        v.PageNo,
			RecipientName: v.RecipientName,
			Address:       v.Address,
			Phone:         v.Phone,
			Courier:       v.Courier,
			Items:         items,
		}
	}

	return s.succeed(ctx, opGetOrderData, started, http.StatusOK, msgLoaded, response)
}

// SaveOrder handles POST /api/v1/orders - appends a new order.
func (s *Server) SaveOrder(ctx echo.Context) error {
	started := time.Now()

	var body servers.SaveOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, opSaveData, started, err)
	}

	details, items := fromInput(body)
	cmd, err := commands.NewSaveOrderCommand(body.OrderNo, details, items)
	if err != nil {
		return s.fail(ctx, opSaveData, started, err, body.OrderNo, nil)
	}

	if err = s.saveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, opSaveData, started, err, body.OrderNo, nil)
	}

	return s.succeed(ctx, opSaveData, started, http.StatusCreated, msgSaved, nil)
}

// UpdateOrder handles PUT /api/v1/orders/{orderNo} - replaces an order in place.
func (s *Server) UpdateOrder(ctx echo.Context, orderNo string) error {
	started := time.Now()

	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, opUpdateOrder, started, err)
	}

	details, items := fromInput(body)
	cmd, err := commands.NewUpdateOrderCommand(orderNo, body.OrderNo, details, items)
	if err != nil {
		return s.fail(ctx, opUpdateOrder, started, err, orderNo, nil)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, opUpdateOrder, started, err, orderNo, nil)
	}

	return s.succeed(ctx, opUpdateOrder, started, http.StatusOK, msgUpdated, nil)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderNo} - removes every row of an order.
func (s *Server) DeleteOrder(ctx echo.Context, orderNo string) error {
	started := time.Now()

	cmd, err := commands.NewDeleteOrderCommand(orderNo)
	if err != nil {
		return s.fail(ctx, opDeleteOrder, started, err, orderNo, nil)
	}

	deleted, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, opDeleteOrder, started, err, orderNo, nil)
	}

	return s.succeed(ctx, opDeleteOrder, started, http.StatusOK, fmt.Sprintf(msgDeleted, deleted), nil)
}

func (s *Server) succeed(ctx echo.Context, operation string, started time.Time, status int, message string, data any) error {
	s.metrics.observe(operation, outcomeOK, started)
	return ctx.JSON(status, servers.Envelope{Success: true, Data: data, Message: message})
}

func (s *Server) fail(ctx echo.Context, operation string, started time.Time, err error, orderNo string, data any) error {
	status, outcome, message := failure(err, orderNo)
	s.metrics.observe(operation, outcome, started)

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx.Request().Context(), level, "operation failed",
		"operation", operation,
		"outcome", outcome,
		"orderNo", orderNo,
		"error", err,
	)

	return ctx.JSON(status, servers.Envelope{Success: false, Data: data, Message: message})
}

func (s *Server) invalidBody(ctx echo.Context, operation string, started time.Time, err error) error {
	s.metrics.observe(operation, outcomeInvalid, started)
	s.logger.Warn("invalid request body", "operation", operation, "error", err)
	return ctx.JSON(http.StatusBadRequest, servers.Envelope{
		Success: false,
		Message: fmt.Sprintf(msgInvalid, "request body"),
	})
}

func fromInput(in servers.OrderInput) (order.Details, []order.Item) {
	details := order.Details{
		Date:          deref(in.Date),
		SetName:       deref(in.SetName),
		PageNo:        deref(in.PageNo),
		RecipientName: deref(in.RecipientName),
		Address:       deref(in.Address),
		Phone:         deref(in.Phone),
		Courier:       deref(in.Courier),
	}

	items := make([]order.Item, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, order.NewItem(it.Name, it.Qty))
	}
	return details, items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
