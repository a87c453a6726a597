package entity

import (
	"fmt"
	"time"
)

// OrderSnapshot is the denormalized copy of an order embedded in a
// pending notification, so the alert can be rebuilt without re-reading
// the order document.
type OrderSnapshot struct {
	ID           string      `json:"id" firestore:"id"`
	OrderID      string      `json:"orderId" firestore:"orderId"`
	CustomerName string      `json:"customerName" firestore:"customerName"`
	TotalAmount  float64     `json:"totalAmount" firestore:"totalAmount"`
	Items        []OrderItem `json:"items" firestore:"items"`
	Status       OrderStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time   `json:"createdAt" firestore:"createdAt"`
}

// PendingNotification is a durable record of an order alert not yet
// acknowledged by the seller. It is keyed by "{sellerId}_{orderId}" so at
// most one record can exist per seller/order pair. The engine creates it
// once, flips Dismissed exactly once, and never deletes it; retention is
// an external concern.
type PendingNotification struct {
	SellerID    string        `json:"sellerId" firestore:"sellerId"`
	OrderID     string        `json:"orderId" firestore:"orderId"`
	OrderData   OrderSnapshot `json:"orderData" firestore:"orderData"`
	Timestamp   int64         `json:"timestamp" firestore:"timestamp"` // epoch millis, feed ordering key
	Dismissed   bool          `json:"dismissed" firestore:"dismissed"`
	CreatedAt   time.Time     `json:"createdAt" firestore:"createdAt"`
	DismissedAt *time.Time    `json:"dismissedAt,omitempty" firestore:"dismissedAt"`
}

// PendingNotificationKey builds the document key for a seller/order pair.
func PendingNotificationKey(sellerID, orderID string) string {
	return fmt.Sprintf("%s_%s", sellerID, orderID)
}

// Key returns the record's document key.
func (p *PendingNotification) Key() string {
	return PendingNotificationKey(p.SellerID, p.OrderID)
}

// NotificationType classifies an entry in the in-memory notification log.
type NotificationType string

const (
	NotificationTypeNewOrder    NotificationType = "new_order"
	NotificationTypeOrderUpdate NotificationType = "order_update"
	NotificationTypeLowStock    NotificationType = "low_stock"
)

// Notification is one entry in the session-scoped notification log shown
// in the notification center. It never drives dismissal logic.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	OrderID   string           `json:"orderId,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
