package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"agriatoo/config"
	domainerrors "agriatoo/internal/domain/errors"
	"agriatoo/internal/domain/service"
	"agriatoo/internal/errors"
	"agriatoo/internal/usecase"

	"go.uber.org/fx"
)

const defaultMaxUploadBytes = 5 * 1024 * 1024 // 5MB

// defaultAllowedTypes is the image-type policy enforced before any
// storage call.
var defaultAllowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// supportedImageHosts are the domains accepted by ValidateImageURL for
// manually-entered image URLs.
var supportedImageHosts = []string{
	"cloudinary.com",
	"res.cloudinary.com",
	"images.unsplash.com",
	"unsplash.com",
	"pexels.com",
	"images.pexels.com",
	"pixabay.com",
	"cdn.pixabay.com",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage      service.ImageStorage
	maxBytes     int64
	allowedTypes []string
	folder       string
	logger       *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	srv := &uploadService{
		storage:      params.Storage,
		maxBytes:     defaultMaxUploadBytes,
		allowedTypes: defaultAllowedTypes,
		folder:       "agriatoo/products",
		logger:       params.Logger,
	}

	if cfg := params.Config.Upload; cfg != nil {
		if cfg.MaxBytes > 0 {
			srv.maxBytes = cfg.MaxBytes
		}
		if len(cfg.AllowedTypes) > 0 {
			srv.allowedTypes = cfg.AllowedTypes
		}
		if cfg.Folder != "" {
			srv.folder = cfg.Folder
		}
	}

	return srv
}

// UploadProductImage enforces the type and size policy before any
// storage call, then stores the image and returns its URL. Failures are
// surfaced once and never retried.
func (srv *uploadService) UploadProductImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	if !srv.typeAllowed(input.ContentType) {
		return nil, errors.WithStack(domainerrors.ErrUploadInvalidType)
	}

	if input.Size > srv.maxBytes {
		return nil, errors.WithStack(domainerrors.ErrUploadTooLarge)
	}

	uploadedURL, err := srv.storage.Upload(ctx, srv.folder, &service.ImageUpload{
		Filename:    input.Filename,
		ContentType: input.ContentType,
		Size:        input.Size,
		Body:        input.Body,
	})
	if err != nil {
		srv.logger.Error("Image upload failed",
			slog.String("filename", input.Filename), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage("object storage upload failed")
	}

	srv.logger.Info("Image uploaded",
		slog.String("filename", input.Filename),
		slog.String("url", uploadedURL),
		slog.Int64("bytes", input.Size))

	return &usecase.UploadImageOutput{URL: uploadedURL}, nil
}

func (srv *uploadService) typeAllowed(contentType string) bool {
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range srv.allowedTypes {
		if normalized == allowed {
			return true
		}
	}

	return false
}

// ValidateImageURL checks a manually-entered image URL against the
// supported host whitelist. An unsupported host yields a warning only;
// the field value is never blocked.
func (srv *uploadService) ValidateImageURL(rawURL string) *usecase.URLValidation {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return &usecase.URLValidation{
			Valid:   false,
			Warning: "Please use a valid image URL from supported domains (Cloudinary, Unsplash, Pexels, etc.)",
		}
	}

	hostname := strings.ToLower(parsed.Hostname())
	for _, domain := range supportedImageHosts {
		if strings.Contains(hostname, domain) {
			return &usecase.URLValidation{Valid: true}
		}
	}

	return &usecase.URLValidation{
		Valid:   false,
		Warning: "Please use a valid image URL from supported domains (Cloudinary, Unsplash, Pexels, etc.)",
	}
}
