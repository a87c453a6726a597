package usecase

import (
	"context"
	"time"

	"agriatoo/internal/domain/entity"
)

// AlertEventKind classifies one alert stream event.
type AlertEventKind string

const (
	// AlertShown means an undismissed order alert became visible.
	AlertShown AlertEventKind = "shown"
	// AlertRemoved means the alert was retracted (dismissed here or on
	// another device).
	AlertRemoved AlertEventKind = "removed"
)

// AlertEvent is one change to the session's visible alert set. The
// presentation layer renders these; the engine never touches a view tree.
type AlertEvent struct {
	Kind    AlertEventKind        `json:"kind"`
	OrderID string                `json:"orderId"`
	Order   *entity.OrderSnapshot `json:"order,omitempty"`
	// Sound tells the presentation layer to play the audio cue alongside
	// showing the alert.
	Sound     bool      `json:"sound"`
	Timestamp time.Time `json:"timestamp"`
}

// Alert is one currently-visible, undismissed order alert.
type Alert struct {
	Order   entity.OrderSnapshot `json:"order"`
	ShownAt time.Time            `json:"shownAt"`
}

// NotificationFeed is the session's notification-center state.
type NotificationFeed struct {
	Notifications []entity.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// NotificationEngine reconciles the durable pending-notification records
// with the live order feed for one seller session. Every order the seller
// has not dismissed surfaces as exactly one visible alert per session,
// re-shown each session until dismissed, with no duplicates across the
// persisted-record and live-feed paths.
type NotificationEngine interface {
	// Start runs the startup reconciliation pass and opens both live
	// subscriptions. It is a one-shot: a stopped engine is not restarted.
	Start(ctx context.Context) error

	// Stop cancels both subscriptions and releases the engine. This is
	// the only cleanup contract the engine guarantees.
	Stop()

	// SellerID returns the owning seller.
	SellerID() string

	// Subscribe registers an alert stream consumer. The returned cancel
	// function must be called on disconnect.
	Subscribe() (<-chan AlertEvent, func())

	// VisibleAlerts returns the currently-visible alert set, oldest first.
	VisibleAlerts() []Alert

	// Feed returns a copy of the notification log and the unread count.
	Feed() *NotificationFeed

	// MarkRead marks a single log entry read.
	MarkRead(notificationID string) error

	// MarkAllRead marks every log entry read and zeroes the unread count.
	MarkAllRead()

	// Dismiss acknowledges an order alert: the durable record is marked
	// dismissed and the alert retracted everywhere. Dismissing an already
	// dismissed order is a no-op.
	Dismiss(ctx context.Context, orderID string) error
}

// NotificationUsecase hands out per-seller alert engines. Engines are
// session-scoped state; tests and concurrent sessions never share one
// accidentally.
type NotificationUsecase interface {
	// EngineFor returns the seller's running engine, starting one if
	// needed.
	EngineFor(ctx context.Context, sellerID string) (NotificationEngine, error)

	// Release stops and removes the seller's engine, if any.
	Release(sellerID string)

	// Shutdown stops all engines.
	Shutdown()
}
