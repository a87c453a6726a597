package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agriatoo/internal/delivery/http/response"
	"agriatoo/internal/domain/entity"
	"agriatoo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the seller's order dashboard handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders returns the seller's orders, newest first, optionally
// filtered by lifecycle status.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	sellerID, err := getSellerID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
		}
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), &usecase.ListOrdersInput{
		SellerID: sellerID,
		Status:   entity.OrderStatus(c.QueryParam("status")),
		Limit:    limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders loaded")
}

// GetOrder returns one order by its tracking identifier.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	sellerID, err := getSellerID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), sellerID, c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order loaded")
}

// UpdateOrderStatus advances one order's lifecycle status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	sellerID, err := getSellerID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.SellerID = sellerID
	input.OrderID = c.Param("orderId")

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// OrderQRCode renders the order's tracking QR code as a PNG image.
// ?printable=true selects the high error-correction variant.
func (h *OrderHandler) OrderQRCode(c echo.Context) error {
	sellerID, err := getSellerID(c)
	if err != nil {
		return err
	}

	printable := c.QueryParam("printable") == "true"

	png, err := h.uc.OrderQRCode(c.Request().Context(), sellerID, c.Param("orderId"), printable)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
