package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"agriatoo/config"
	domainerrors "agriatoo/internal/domain/errors"
	"agriatoo/internal/domain/service"
	mockSvc "agriatoo/internal/mocks/service"
	"agriatoo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T) (usecase.UploadUsecase, *mockSvc.MockImageStorage) {
	t.Helper()

	storage := mockSvc.NewMockImageStorage(t)
	srv := NewUploadService(UploadServiceParams{
		Storage: storage,
		Config:  &config.Config{},
		Logger:  slog.New(slog.DiscardHandler),
	})

	return srv, storage
}

func TestUploadService_UploadProductImage_Success(t *testing.T) {
	srv, storage := newUploadFixture(t)
	ctx := context.Background()

	body := strings.NewReader("fake image bytes")
	storage.EXPECT().
		Upload(ctx, "agriatoo/products", mock.MatchedBy(func(upload *service.ImageUpload) bool {
			return upload.Filename == "tomatoes.jpg" && upload.ContentType == "image/jpeg"
		})).
		Return("https://storage.example.com/agriatoo/products/abc.jpg", nil)

	output, err := srv.UploadProductImage(ctx, &usecase.UploadImageInput{
		Filename:    "tomatoes.jpg",
		ContentType: "image/jpeg",
		Size:        int64(body.Len()),
		Body:        body,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/agriatoo/products/abc.jpg", output.URL)
}

func TestUploadService_UploadProductImage_RejectsUnsupportedType(t *testing.T) {
	srv, _ := newUploadFixture(t)

	// No storage call may happen for a rejected type.
	output, err := srv.UploadProductImage(context.Background(), &usecase.UploadImageInput{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Body:        strings.NewReader("%PDF"),
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUploadInvalidType)
}

func TestUploadService_UploadProductImage_RejectsOversized(t *testing.T) {
	srv, _ := newUploadFixture(t)

	output, err := srv.UploadProductImage(context.Background(), &usecase.UploadImageInput{
		Filename:    "huge.png",
		ContentType: "image/png",
		Size:        5*1024*1024 + 1,
		Body:        strings.NewReader(""),
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
}

func TestUploadService_UploadProductImage_ContentTypeNormalized(t *testing.T) {
	srv, storage := newUploadFixture(t)
	ctx := context.Background()

	storage.EXPECT().
		Upload(ctx, "agriatoo/products", mock.AnythingOfType("*service.ImageUpload")).
		Return("https://storage.example.com/x.webp", nil)

	_, err := srv.UploadProductImage(ctx, &usecase.UploadImageInput{
		Filename:    "x.webp",
		ContentType: " IMAGE/WEBP ",
		Size:        10,
		Body:        strings.NewReader("0123456789"),
	})
	assert.NoError(t, err)
}

func TestUploadService_UploadProductImage_StorageFailure(t *testing.T) {
	srv, storage := newUploadFixture(t)
	ctx := context.Background()

	storage.EXPECT().
		Upload(ctx, "agriatoo/products", mock.AnythingOfType("*service.ImageUpload")).
		Return("", errors.New("bucket unavailable"))

	output, err := srv.UploadProductImage(ctx, &usecase.UploadImageInput{
		Filename:    "tomatoes.jpg",
		ContentType: "image/jpeg",
		Size:        16,
		Body:        strings.NewReader("fake image bytes"),
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}

func TestUploadService_ValidateImageURL(t *testing.T) {
	srv, _ := newUploadFixture(t)

	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{name: "cloudinary", url: "https://res.cloudinary.com/demo/image/upload/tomatoes.jpg", valid: true},
		{name: "unsplash", url: "https://images.unsplash.com/photo-123", valid: true},
		{name: "pexels", url: "https://images.pexels.com/photos/123/tomatoes.jpeg", valid: true},
		{name: "pixabay cdn", url: "https://cdn.pixabay.com/photo/123.jpg", valid: true},
		{name: "unknown host", url: "https://example.com/image.jpg", valid: false},
		{name: "not a url", url: "://broken", valid: false},
		{name: "empty", url: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validation := srv.ValidateImageURL(tt.url)
			assert.Equal(t, tt.valid, validation.Valid)
			if tt.valid {
				assert.Empty(t, validation.Warning)
			} else {
				assert.Contains(t, validation.Warning, "supported domains")
			}
		})
	}
}
