// Package servers holds the HTTP contract of the API: the types, the server
// interface and the echo route registration for the operations in openapi.yaml.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Envelope is the body of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// InitData defines model for InitData.
type InitData struct {
	Couriers []string `json:"couriers"`
	Products []string `json:"products"`
}

// Item defines model for Item.
type Item struct {
	Name string `json:"name"`
	Qty  string `json:"qty"`
}

// Order defines model for Order.
type Order struct {
	Address       string `json:"address"`
	Courier       string `json:"courier"`
	Date          string `json:"date"`
	Items         []Item `json:"items"`
	OrderNo       string `json:"orderNo"`
	PageNo        string `json:"pageNo"`
	Phone         string `json:"phone"`
	RecipientName string `json:"recipientName"`
	SetName       string `json:"setName"`
}

// OrderInput defines model for OrderInput.
type OrderInput struct {
	Address       *string `json:"address,omitempty"`
	Courier       *string `json:"courier,omitempty"`
	Date          *string `json:"date,omitempty"`
	Items         []Item  `json:"items"`
	OrderNo       string  `json:"orderNo"`
	PageNo        *string `json:"pageNo,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	RecipientName *string `json:"recipientName,omitempty"`
	SetName       *string `json:"setName,omitempty"`
}

// SaveOrderJSONRequestBody defines body for SaveOrder for application/json ContentType.
type SaveOrderJSONRequestBody = OrderInput

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderInput

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Product and courier reference lists
	// (GET /api/v1/init-data)
	GetInitData(ctx echo.Context) error
	// All orders, newest first
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context) error
	// Append a new order
	// (POST /api/v1/orders)
	SaveOrder(ctx echo.Context) error
	// Delete every row of an order
	// (DELETE /api/v1/orders/{orderNo})
	DeleteOrder(ctx echo.Context, orderNo string) error
	// Replace every row of an order
	// (PUT /api/v1/orders/{orderNo})
	UpdateOrder(ctx echo.Context, orderNo string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetInitData converts echo context to params.
func (w *ServerInterfaceWrapper) GetInitData(ctx echo.Context) error {
	return w.Handler.GetInitData(ctx)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

// SaveOrder converts echo context to params.
func (w *ServerInterfaceWrapper) SaveOrder(ctx echo.Context) error {
	return w.Handler.SaveOrder(ctx)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderNo, err := bindOrderNo(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderNo)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderNo, err := bindOrderNo(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderNo)
}

func bindOrderNo(ctx echo.Context) (string, error) {
	var orderNo string
	err := runtime.BindStyledParameterWithOptions("simple", "orderNo", ctx.Param("orderNo"), &orderNo,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNo: %s", err))
	}
	return orderNo, nil
}

// EchoRouter is the subset of echo routing used to register the handlers.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/init-data", wrapper.GetInitData)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.SaveOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderNo", wrapper.DeleteOrder)
	router.PUT(baseURL+"/api/v1/orders/:orderNo", wrapper.UpdateOrder)
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating openapi document: %w", err)
	}
	return doc, nil
}
