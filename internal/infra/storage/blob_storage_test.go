package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"agriatoo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStorage_Upload(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	storage := NewBlobImageStorage(bucket, "https://images.example.com/", slog.New(slog.DiscardHandler))
	defer storage.Close()

	ctx := context.Background()
	content := "fake image bytes"

	url, err := storage.Upload(ctx, "agriatoo/products", &service.ImageUpload{
		Filename:    "tomatoes.jpg",
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
		Body:        strings.NewReader(content),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://images.example.com/agriatoo/products/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The object is retrievable under the key embedded in the URL.
	key := strings.TrimPrefix(url, "https://images.example.com/")
	reader, err := bucket.NewReader(ctx, key, nil)
	require.NoError(t, err)
	defer reader.Close()

	stored, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))
	assert.Equal(t, "image/jpeg", reader.ContentType())
}

func TestBlobImageStorage_Upload_UniqueKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	storage := NewBlobImageStorage(bucket, "https://images.example.com", slog.New(slog.DiscardHandler))
	defer storage.Close()

	ctx := context.Background()

	first, err := storage.Upload(ctx, "products", &service.ImageUpload{
		Filename:    "same-name.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("aaaa"),
	})
	require.NoError(t, err)

	second, err := storage.Upload(ctx, "products", &service.ImageUpload{
		Filename:    "same-name.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("bbbb"),
	})
	require.NoError(t, err)

	// Same filename never collides; each upload gets its own key.
	assert.NotEqual(t, first, second)
}

func TestBlobImageStorage_Upload_NoFolder(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	storage := NewBlobImageStorage(bucket, "https://images.example.com", slog.New(slog.DiscardHandler))
	defer storage.Close()

	url, err := storage.Upload(context.Background(), "", &service.ImageUpload{
		Filename:    "x.webp",
		ContentType: "image/webp",
		Size:        1,
		Body:        strings.NewReader("a"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://images.example.com/"))
	// No folder segment between the base URL and the object name.
	key := strings.TrimPrefix(url, "https://images.example.com/")
	assert.NotContains(t, key, "/")
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		filename string
		prefix   string
		suffix   string
	}{
		{name: "with folder", folder: "agriatoo/products", filename: "a.jpg", prefix: "agriatoo/products/", suffix: ".jpg"},
		{name: "trims slashes", folder: "/products/", filename: "a.png", prefix: "products/", suffix: ".png"},
		{name: "uppercase extension lowered", folder: "products", filename: "a.JPG", prefix: "products/", suffix: ".jpg"},
		{name: "no extension", folder: "products", filename: "noext", prefix: "products/", suffix: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := objectKey(tt.folder, tt.filename)
			assert.True(t, strings.HasPrefix(key, tt.prefix), "key %q", key)
			assert.True(t, strings.HasSuffix(key, tt.suffix), "key %q", key)
		})
	}
}
