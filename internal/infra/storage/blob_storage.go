// Package storage implements the image object store on gocloud.dev
// blob buckets.
package storage

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"agriatoo/config"
	"agriatoo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobImageStorage implements ImageStorage on a gocloud.dev bucket.
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// ImageStorageParams holds dependencies for the image storage, injected by Fx
type ImageStorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params ImageStorageParams) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	storage := &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image storage bucket")

			return storage.Close()
		},
	})

	return storage, nil
}

// NewBlobImageStorage wraps an already-open bucket, used by tests with
// an in-memory bucket.
func NewBlobImageStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload stores the image under a generated key and returns its public URL.
// The key embeds a fresh UUID so concurrent uploads of same-named files
// never collide.
func (s *blobImageStorage) Upload(ctx context.Context, folder string, upload *service.ImageUpload) (string, error) {
	key := objectKey(folder, upload.Filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := writer.ReadFrom(upload.Body); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize object %s", key)
	}

	url := s.publicBaseURL + "/" + key

	s.logger.Info("Image uploaded",
		slog.String("key", key),
		slog.Int64("size", upload.Size),
	)

	return url, nil
}

// Close releases the underlying bucket handle.
func (s *blobImageStorage) Close() error {
	return s.bucket.Close()
}

// objectKey derives the storage key from the folder and the upload's
// file extension.
func objectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := uuid.NewString() + ext
	if folder == "" {
		return name
	}

	return strings.Trim(folder, "/") + "/" + name
}
