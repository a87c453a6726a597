package firestore

import (
	"context"
	"log/slog"
	"time"

	"agriatoo/config"
	"agriatoo/internal/domain/entity"
	"agriatoo/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// orderRepository implements the domain.OrderRepository interface on
// Firestore. Orders are written by the buyer-facing backend; here they
// are read, watched, and advanced through their lifecycle.
type orderRepository struct {
	client  *firestore.Client
	backoff backoffConfig
	logger  *slog.Logger
}

// OrderRepositoryParams holds dependencies for orderRepository, injected by Fx
type OrderRepositoryParams struct {
	fx.In

	Client *firestore.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(params OrderRepositoryParams) repository.OrderRepository {
	return &orderRepository{
		client:  params.Client,
		backoff: newBackoffConfig(params.Config.Notification),
		logger:  params.Logger,
	}
}

// FindBySeller retrieves orders for a seller, newest first. An empty
// status filters nothing.
func (repo *orderRepository) FindBySeller(ctx context.Context, sellerID string, orderStatus entity.OrderStatus, limit int) ([]*entity.Order, error) {
	query := repo.client.Collection(ordersCollection).
		Where("sellerId", "==", sellerID)
	if orderStatus != "" {
		query = query.Where("status", "==", string(orderStatus))
	}
	query = query.OrderBy("createdAt", firestore.Desc).Limit(limit)

	it := query.Documents(ctx)
	defer it.Stop()

	var orders []*entity.Order
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders")
		}

		order, err := toOrderDomain(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// FindByOrderID retrieves a single order by its tracking identifier.
func (repo *orderRepository) FindByOrderID(ctx context.Context, sellerID, orderID string) (*entity.Order, error) {
	it := repo.client.Collection(ordersCollection).
		Where("sellerId", "==", sellerID).
		Where("orderId", "==", orderID).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(doc)
}

// UpdateStatus advances the order's lifecycle status and stamps the
// transition time on the matching lifecycle field.
func (repo *orderRepository) UpdateStatus(ctx context.Context, sellerID, orderID string, orderStatus entity.OrderStatus, at time.Time) error {
	order, err := repo.FindByOrderID(ctx, sellerID, orderID)
	if err != nil {
		return err
	}

	updates := []firestore.Update{
		{Path: "status", Value: string(orderStatus)},
		{Path: "updatedAt", Value: at},
	}
	if field := lifecycleField(orderStatus); field != "" {
		updates = append(updates, firestore.Update{Path: field, Value: at})
	}

	if _, err := repo.client.Collection(ordersCollection).Doc(order.ID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

// lifecycleField returns the timestamp field stamped by a transition into
// the given status, or empty if none applies.
func lifecycleField(orderStatus entity.OrderStatus) string {
	switch orderStatus {
	case entity.OrderStatusPacked:
		return "packedAt"
	case entity.OrderStatusOutForDelivery:
		return "outForDeliveryAt"
	case entity.OrderStatusDelivered, entity.OrderStatusNotDelivered:
		return "deliveredAt"
	default:
		return ""
	}
}

// WatchBySeller opens a live subscription on the seller's most recent
// orders. The channel closes when ctx is cancelled.
func (repo *orderRepository) WatchBySeller(ctx context.Context, sellerID string, limit int) (<-chan repository.OrderDelta, error) {
	query := repo.client.Collection(ordersCollection).
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	deltas := make(chan repository.OrderDelta)
	go func() {
		defer close(deltas)
		watchChanges(ctx, repo.logger, query, repo.backoff, func(change firestore.DocumentChange) {
			order, err := toOrderDomain(change.Doc)
			if err != nil {
				repo.logger.Error("Skipping undecodable order change",
					slog.String("docID", change.Doc.Ref.ID),
					slog.Any("error", err),
				)

				return
			}

			select {
			case deltas <- repository.OrderDelta{Kind: toChangeKind(change.Kind), Order: order}:
			case <-ctx.Done():
			}
		})
	}()

	return deltas, nil
}

// toOrderDomain maps an order document back to a pure domain entity.
func toOrderDomain(doc *firestore.DocumentSnapshot) (*entity.Order, error) {
	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Wrapf(err, "failed to decode order document %s", doc.Ref.ID)
	}
	order.ID = doc.Ref.ID

	return &order, nil
}
