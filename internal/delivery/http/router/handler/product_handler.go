package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agriatoo/internal/delivery/http/response"
	"agriatoo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the seller's listing handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns the seller's listings, newest first.
func (h *ProductHandler) ListProducts(c echo.Context) error {
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

	products, err := h.uc.ListProducts(c.Request().Context(), sellerID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products loaded")
}

// CreateProduct creates a listing. Unsupported image hosts come back as
// warnings alongside the created product.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, err := getSellerID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.SellerID = sellerID

	output, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Product created successfully")
}
