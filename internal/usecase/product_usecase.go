package usecase

import (
	"context"

	"agriatoo/internal/domain/entity"
)

// CreateProductInput defines the data required to create a listing.
type CreateProductInput struct {
	SellerID        string   `json:"-"`
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category" validate:"required"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Unit            string   `json:"unit" validate:"required"`
	Stock           int      `json:"stock" validate:"gte=0"`
	Images          []string `json:"images"`
	CoveredPincodes []string `json:"coveredPincodes"`
}

// CreateProductOutput returns the created listing plus any advisory
// warnings about externally-hosted image URLs.
type CreateProductOutput struct {
	Product       *entity.Product `json:"product"`
	ImageWarnings []string        `json:"imageWarnings,omitempty"`
}

// ProductUsecase defines the interface for a seller's product listings.
type ProductUsecase interface {
	// ListProducts retrieves the seller's listings, newest first.
	ListProducts(ctx context.Context, sellerID string, limit int) ([]*entity.Product, error)

	// CreateProduct creates a listing. Image URLs from unsupported hosts
	// produce warnings but are never rejected.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*CreateProductOutput, error)
}
