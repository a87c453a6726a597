package handler

import (
	"log/slog"
	"net/http"

	"agriatoo/internal/delivery/http/response"
	"agriatoo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for image upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadImage handles a multipart product image upload. The type and
// size policy is enforced before any storage traffic.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	if _, err := getSellerID(c); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file in form field 'image'")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	output, err := h.uc.UploadProductImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Image uploaded successfully")
}

// ValidateURLRequest carries a manually-entered image URL to check.
type ValidateURLRequest struct {
	URL string `json:"url" validate:"required"`
}

// ValidateImageURL checks an externally-hosted image URL against the
// supported domains. Failing the check yields a warning, never an error.
func (h *UploadHandler) ValidateImageURL(c echo.Context) error {
	var req ValidateURLRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid URL validation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	validation := h.uc.ValidateImageURL(req.URL)

	return response.Success(c, http.StatusOK, validation, "URL checked")
}
