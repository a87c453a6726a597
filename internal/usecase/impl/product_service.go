package impl

import (
	"context"
	"log/slog"
	"time"

	"agriatoo/internal/domain/entity"
	"agriatoo/internal/domain/repository"
	"agriatoo/internal/errors"
	"agriatoo/internal/usecase"

	"go.uber.org/fx"
)

const defaultProductListLimit = 100

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	uploads     usecase.UploadUsecase
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Uploads     usecase.UploadUsecase
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		uploads:     params.Uploads,
		logger:      params.Logger,
	}
}

// ListProducts retrieves the seller's listings, newest first.
func (srv *productService) ListProducts(ctx context.Context, sellerID string, limit int) ([]*entity.Product, error) {
	if limit <= 0 || limit > defaultProductListLimit {
		limit = defaultProductListLimit
	}

	products, err := srv.productRepo.FindBySeller(ctx, sellerID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct creates a listing with the seller's fields denormalized
// onto it. Image URLs from unsupported hosts produce advisory warnings
// but are never rejected; the value still lands on the product.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.CreateProductOutput, error) {
	seller, err := srv.userRepo.FindByID(ctx, input.SellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller for product")
	}

	var warnings []string
	for _, imageURL := range input.Images {
		if validation := srv.uploads.ValidateImageURL(imageURL); !validation.Valid {
			warnings = append(warnings, validation.Warning+" ("+imageURL+")")
		}
	}

	coveredPincodes := input.CoveredPincodes
	if len(coveredPincodes) == 0 {
		coveredPincodes = seller.CoveredPincodes
	}

	now := time.Now()
	product := &entity.Product{
		SellerID:             seller.ID,
		SellerName:           seller.Name,
		SellerPincode:        seller.Pincode,
		SellerAddress:        seller.Address,
		SellerShopName:       seller.ShopName,
		SellerDeliveryRadius: seller.DeliveryRadius,
		Name:                 input.Name,
		Description:          input.Description,
		Category:             input.Category,
		Price:                input.Price,
		Unit:                 input.Unit,
		Stock:                input.Stock,
		Images:               input.Images,
		CoveredPincodes:      coveredPincodes,
		CreatedAt:            now,
		UpdatedAt:            now,
		IsActive:             true,
	}

	id, err := srv.productRepo.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	product.ID = id

	srv.logger.Info("Product created",
		slog.String("productID", id),
		slog.String("sellerID", seller.ID),
		slog.Int("imageWarnings", len(warnings)))

	return &usecase.CreateProductOutput{
		Product:       product,
		ImageWarnings: warnings,
	}, nil
}
