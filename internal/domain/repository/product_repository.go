package repository

import (
	"context"
	"errors"

	"agriatoo/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for a seller's product listings.
type ProductRepository interface {
	// Create persists a new product and returns its generated document ID.
	Create(ctx context.Context, product *entity.Product) (string, error)

	// FindByID retrieves a product by document ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindBySeller retrieves a seller's products, newest first.
	FindBySeller(ctx context.Context, sellerID string, limit int) ([]*entity.Product, error)

	// Update replaces the product document.
	Update(ctx context.Context, product *entity.Product) error
}
