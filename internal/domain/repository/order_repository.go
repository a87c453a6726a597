package repository

import (
	"context"
	"errors"
	"time"

	"agriatoo/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order reads and the live
// order feed. Orders are created by the buyer-facing backend; this
// service only reads them and advances their lifecycle status.
type OrderRepository interface {
	// FindBySeller retrieves orders for a seller, newest first. An empty
	// status filters nothing.
	FindBySeller(ctx context.Context, sellerID string, status entity.OrderStatus, limit int) ([]*entity.Order, error)

	// FindByOrderID retrieves a single order by its tracking identifier.
	FindByOrderID(ctx context.Context, sellerID, orderID string) (*entity.Order, error)

	// UpdateStatus advances the order's lifecycle status and stamps the
	// transition time.
	UpdateStatus(ctx context.Context, sellerID, orderID string, status entity.OrderStatus, at time.Time) error

	// WatchBySeller opens a live subscription on the seller's most recent
	// orders (newest first, capped at limit). The initial snapshot is
	// delivered as added deltas, followed by incremental changes. The
	// channel closes when ctx is cancelled; stream errors are handled by
	// reconnecting internally, which redelivers a snapshot.
	WatchBySeller(ctx context.Context, sellerID string, limit int) (<-chan OrderDelta, error)
}
