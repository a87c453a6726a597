package usecase

import (
	"context"
	"io"
)

// UploadImageInput defines one product-image upload request.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadImageOutput returns the durable retrieval URL for the stored image.
type UploadImageOutput struct {
	URL string `json:"url"`
}

// URLValidation is the result of checking an externally-supplied image URL.
type URLValidation struct {
	Valid bool `json:"valid"`
	// Warning is set when the URL's host is outside the supported image
	// domains. The value is still usable; the warning is advisory only.
	Warning string `json:"warning,omitempty"`
}

// UploadUsecase defines the interface for the product-image upload helper.
type UploadUsecase interface {
	// UploadProductImage enforces the type and size policy before any
	// storage call, then stores the image and returns its URL.
	UploadProductImage(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error)

	// ValidateImageURL checks a manually-entered image URL against the
	// supported host whitelist. Failing the check never blocks the value,
	// it only produces a warning.
	ValidateImageURL(rawURL string) *URLValidation
}
