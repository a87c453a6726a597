package service

import (
	"context"
	"io"
)

// ImageUpload describes one image upload request after policy checks.
type ImageUpload struct {
	// Filename is the client-supplied name, used only to derive the
	// object extension.
	Filename string
	// ContentType is the declared MIME type, already policy-checked.
	ContentType string
	// Size is the exact byte length of Body.
	Size int64
	// Body is the image payload.
	Body io.Reader
}

// ImageStorage defines the interface for the object storage host that
// keeps uploaded product images.
type ImageStorage interface {
	// Upload stores the image under the given folder and returns a
	// durable retrieval URL.
	Upload(ctx context.Context, folder string, upload *ImageUpload) (string, error)

	// Close releases the underlying bucket handle.
	Close() error
}
