package repository

import (
	"context"
	"errors"
	"time"

	"agriatoo/internal/domain/entity"
)

// ErrPendingNotificationNotFound is returned when no pending record
// exists for a seller/order key.
var ErrPendingNotificationNotFound = errors.New("pending notification not found")

// PendingNotificationRepository defines the interface for the durable
// pending-order alert records. Records are keyed by
// "{sellerId}_{orderId}", so a concurrent double-create degrades to an
// overwrite rather than a duplicate.
type PendingNotificationRepository interface {
	// Save creates or replaces the record under its seller/order key.
	Save(ctx context.Context, record *entity.PendingNotification) error

	// Get point-reads a record by seller/order key.
	Get(ctx context.Context, sellerID, orderID string) (*entity.PendingNotification, error)

	// MarkDismissed flips the record's dismissed flag and stamps the
	// dismissal time. Marking an already-dismissed record is not an error.
	MarkDismissed(ctx context.Context, sellerID, orderID string, at time.Time) error

	// FindUndismissed retrieves all undismissed records for a seller,
	// newest first.
	FindUndismissed(ctx context.Context, sellerID string) ([]*entity.PendingNotification, error)

	// WatchUndismissed opens a live subscription on the seller's
	// undismissed records. A record whose dismissed flag flips true
	// arrives as a removed delta (it left the filtered set). The channel
	// closes when ctx is cancelled; stream errors are handled by
	// reconnecting internally.
	WatchUndismissed(ctx context.Context, sellerID string) (<-chan PendingNotificationDelta, error)
}
