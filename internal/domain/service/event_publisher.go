package service

import (
	"context"
)

// OrderAlertEvent represents a notification lifecycle event published for
// downstream consumers (analytics, external dashboards).
type OrderAlertEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	// Kind is "created" when a pending record is first persisted and
	// "dismissed" when the seller acknowledges it.
	Kind         string  `json:"kind"`
	SellerID     string  `json:"seller_id"`
	OrderID      string  `json:"order_id"`
	CustomerName string  `json:"customer_name,omitempty"`
	TotalAmount  float64 `json:"total_amount,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderAlertEvent publishes a notification lifecycle event for
	// async processing.
	PublishOrderAlertEvent(ctx context.Context, event *OrderAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
