package firestore

import (
	"context"

	"agriatoo/internal/domain/entity"
	"agriatoo/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// productRepository implements the domain.ProductRepository interface on Firestore.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// Create persists a new product and returns its generated document ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) (string, error) {
	doc, _, err := repo.client.Collection(productsCollection).Add(ctx, product)
	if err != nil {
		return "", errors.Wrap(err, "failed to create product")
	}

	return doc.ID, nil
}

// FindByID retrieves a product by document ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := repo.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(doc)
}

// FindBySeller retrieves a seller's products, newest first.
func (repo *productRepository) FindBySeller(ctx context.Context, sellerID string, limit int) ([]*entity.Product, error) {
	it := repo.client.Collection(productsCollection).
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer it.Stop()

	var products []*entity.Product
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}

		product, err := toProductDomain(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Update replaces the product document.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		return repository.ErrProductNotFound
	}

	if _, err := repo.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Wrapf(err, "failed to update product %s", product.ID)
	}

	return nil
}

// toProductDomain maps a product document back to a pure domain entity.
func toProductDomain(doc *firestore.DocumentSnapshot) (*entity.Product, error) {
	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product document %s", doc.Ref.ID)
	}
	product.ID = doc.Ref.ID

	return &product, nil
}
