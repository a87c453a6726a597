package impl

import (
	"context"
	"log/slog"
	"testing"

	"agriatoo/config"
	"agriatoo/internal/domain/entity"
	mockRepo "agriatoo/internal/mocks/repository"
	mockSvc "agriatoo/internal/mocks/service"
	"agriatoo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	uploads := NewUploadService(UploadServiceParams{
		Storage: mockSvc.NewMockImageStorage(t),
		Config:  &config.Config{},
		Logger:  logger,
	})

	fixture := &productFixture{
		productRepo: mockRepo.NewMockProductRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
	}
	fixture.service = NewProductService(ProductServiceParams{
		ProductRepo: fixture.productRepo,
		UserRepo:    fixture.userRepo,
		Uploads:     uploads,
		Logger:      logger,
	})

	return fixture
}

func testSellerRecord() *entity.User {
	return &entity.User{
		ID:              testSellerID,
		Email:           "seller@example.com",
		Role:            entity.RoleSeller,
		Name:            "Anita Devi",
		Pincode:         "560001",
		Address:         "12 Market Road",
		ShopName:        "Anita Fresh Produce",
		DeliveryRadius:  10,
		CoveredPincodes: []string{"560001", "560002"},
		IsActive:        true,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	fixture := newProductFixture(t)
	ctx := context.Background()

	expected := []*entity.Product{{ID: "prod-1", Name: "Tomatoes"}}
	fixture.productRepo.EXPECT().
		FindBySeller(ctx, testSellerID, 10).
		Return(expected, nil)

	products, err := fixture.service.ListProducts(ctx, testSellerID, 10)
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_ListProducts_ClampsLimit(t *testing.T) {
	fixture := newProductFixture(t)
	ctx := context.Background()

	fixture.productRepo.EXPECT().
		FindBySeller(ctx, testSellerID, 100).
		Return(nil, nil)

	_, err := fixture.service.ListProducts(ctx, testSellerID, 5000)
	require.NoError(t, err)
}

func TestProductService_CreateProduct_DenormalizesSeller(t *testing.T) {
	fixture := newProductFixture(t)
	ctx := context.Background()
	seller := testSellerRecord()

	fixture.userRepo.EXPECT().
		FindByID(ctx, testSellerID).
		Return(seller, nil)
	fixture.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.SellerID == seller.ID &&
				product.SellerName == seller.Name &&
				product.SellerShopName == seller.ShopName &&
				product.SellerPincode == seller.Pincode &&
				product.IsActive
		})).
		Return("prod-new", nil)

	output, err := fixture.service.CreateProduct(ctx, &usecase.CreateProductInput{
		SellerID: testSellerID,
		Name:     "Tomatoes",
		Category: "vegetables",
		Price:    40,
		Unit:     "kg",
		Stock:    25,
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-new", output.Product.ID)
	assert.Empty(t, output.ImageWarnings)
	// No pincodes given, so the seller's coverage applies.
	assert.Equal(t, seller.CoveredPincodes, output.Product.CoveredPincodes)
}

func TestProductService_CreateProduct_ExplicitPincodesKept(t *testing.T) {
	fixture := newProductFixture(t)
	ctx := context.Background()

	fixture.userRepo.EXPECT().
		FindByID(ctx, testSellerID).
		Return(testSellerRecord(), nil)
	fixture.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return("prod-new", nil)

	output, err := fixture.service.CreateProduct(ctx, &usecase.CreateProductInput{
		SellerID:        testSellerID,
		Name:            "Onions",
		Category:        "vegetables",
		Price:           30,
		Unit:            "kg",
		Stock:           50,
		CoveredPincodes: []string{"560099"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"560099"}, output.Product.CoveredPincodes)
}

func TestProductService_CreateProduct_WarnsOnUnsupportedImageHosts(t *testing.T) {
	fixture := newProductFixture(t)
	ctx := context.Background()

	fixture.userRepo.EXPECT().
		FindByID(ctx, testSellerID).
		Return(testSellerRecord(), nil)
	fixture.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return("prod-new", nil)

	images := []string{
		"https://res.cloudinary.com/demo/tomatoes.jpg",
		"https://example.com/tomatoes.jpg",
	}
	output, err := fixture.service.CreateProduct(ctx, &usecase.CreateProductInput{
		SellerID: testSellerID,
		Name:     "Tomatoes",
		Category: "vegetables",
		Price:    40,
		Unit:     "kg",
		Stock:    25,
		Images:   images,
	})
	require.NoError(t, err)
	// The unsupported URL warns but still lands on the product.
	require.Len(t, output.ImageWarnings, 1)
	assert.Contains(t, output.ImageWarnings[0], "https://example.com/tomatoes.jpg")
	assert.Equal(t, images, output.Product.Images)
}
