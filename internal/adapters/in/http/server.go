package http

import (
	"context"
	"fmt"
	"net/http"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	PaymentConfirmer interface {
		Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error)
	}
	OrderCanceler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	OrderShipper interface {
		Handle(ctx context.Context, cmd commands.ShipOrderCommand) (*order.Order, error)
	}
	DeliveryMarker interface {
		Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	ShippingGetter interface {
		Handle(ctx context.Context, query queries.GetShippingQuery) (*queries.GetShippingQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder    OrderCreator
	ConfirmPayment PaymentConfirmer
	CancelOrder    OrderCanceler
	ShipOrder      OrderShipper
	MarkDelivered  DeliveryMarker
	ListOrders     OrderLister
	GetOrder       OrderGetter
	GetShipping    ShippingGetter
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) (*Server, error) {
	required := map[string]any{
		"CreateOrder":    h.CreateOrder,
		"ConfirmPayment": h.ConfirmPayment,
		"CancelOrder":    h.CancelOrder,
		"ShipOrder":      h.ShipOrder,
		"MarkDelivered":  h.MarkDelivered,
		"ListOrders":     h.ListOrders,
		"GetOrder":       h.GetOrder,
		"GetShipping":    h.GetShipping,
	}
	for name, handler := range required {
		if handler == nil {
			return nil, errs.NewValueIsRequiredError(name)
		}
	}
	return &Server{h: h}, nil
}

type createOrderRequest struct {
	AddressID string `json:"addressId"`
}

type confirmPaymentRequest struct {
	CardToken string `json:"cardToken"`
}

type shipOrderRequest struct {
	Carrier    string `json:"carrier"`
	TrackingNo string `json:"trackingNo"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body createOrderRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(userID(c), body.AddressID, c.Request().Header.Get(HeaderIdemKey))
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrderResponse(o))
}

// ListOrders handles GET /api/orders. Without limit all orders are returned;
// with limit and no page the first page is returned.
func (s *Server) ListOrders(c echo.Context) error {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	pageNumber, pageLimit := 0, 0
	if limit != nil {
		pageLimit = *limit
		pageNumber = 1
		if page != nil {
			pageNumber = *page
		}
	}

	query, err := queries.NewListOrdersQuery(userID(c), pageNumber, pageLimit)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, userID(c))
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if o == nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// ConfirmPayment handles POST /api/orders/{id}/confirm-payment.
func (s *Server) ConfirmPayment(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	var body confirmPaymentRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, userID(c), body.CardToken)
	if err != nil {
		return err
	}

	o, err := s.h.ConfirmPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// CancelOrder handles POST /api/orders/{id}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID(c))
	if err != nil {
		return err
	}

	o, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// GetShipping handles GET /api/orders/{id}/shipping.
func (s *Server) GetShipping(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShippingQuery(orderID, userID(c))
	if err != nil {
		return err
	}

	info, err := s.h.GetShipping.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if info == nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	return c.JSON(http.StatusOK, toShippingInfoResponse(info))
}

// ShipOrder handles POST /api/admin/orders/{id}/ship.
func (s *Server) ShipOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	var body shipOrderRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, body.Carrier, body.TrackingNo)
	if err != nil {
		return err
	}

	o, err := s.h.ShipOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// MarkDelivered handles POST /api/admin/orders/{id}/mark-delivered.
func (s *Server) MarkDelivered(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID)
	if err != nil {
		return err
	}

	o, err := s.h.MarkDelivered.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

func orderIDParam(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	orderID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid order id")
	}
	return orderID, nil
}
