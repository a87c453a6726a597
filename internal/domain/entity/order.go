package entity

import (
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusReceived       OrderStatus = "received"
	OrderStatusPacked         OrderStatus = "packed"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusNotDelivered   OrderStatus = "not_delivered"
)

// nextStatuses encodes the legal lifecycle transitions:
// received -> packed -> out_for_delivery -> delivered, with not_delivered
// as an alternate terminal from out_for_delivery.
var nextStatuses = map[OrderStatus][]OrderStatus{
	OrderStatusReceived:       {OrderStatusPacked},
	OrderStatusPacked:         {OrderStatusOutForDelivery},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusNotDelivered},
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle step.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range nextStatuses[s] {
		if next == target {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusNotDelivered
}

// OrderItem is a single product line within an order.
type OrderItem struct {
	ProductID   string  `json:"productId" firestore:"productId"`
	ProductName string  `json:"productName" firestore:"productName"`
	Price       float64 `json:"price" firestore:"price"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
	Unit        string  `json:"unit" firestore:"unit"`
}

// Order is owned by the marketplace backend and read-only to the alert
// engine. OrderID is the customer-facing tracking identifier, unique per
// seller and stable across the order's lifecycle.
type Order struct {
	ID               string      `json:"id" firestore:"-"`
	OrderID          string      `json:"orderId" firestore:"orderId"`
	CustomerID       string      `json:"customerId,omitempty" firestore:"customerId"`
	CustomerName     string      `json:"customerName" firestore:"customerName"`
	CustomerPhone    string      `json:"customerPhone" firestore:"customerPhone"`
	CustomerAddress  string      `json:"customerAddress" firestore:"customerAddress"`
	CustomerPincode  string      `json:"customerPincode" firestore:"customerPincode"`
	SellerID         string      `json:"sellerId" firestore:"sellerId"`
	SellerName       string      `json:"sellerName" firestore:"sellerName"`
	SellerShopName   string      `json:"sellerShopName" firestore:"sellerShopName"`
	SellerAddress    string      `json:"sellerAddress" firestore:"sellerAddress"`
	Items            []OrderItem `json:"items" firestore:"items"`
	TotalAmount      float64     `json:"totalAmount" firestore:"totalAmount"`
	Status           OrderStatus `json:"status" firestore:"status"`
	PaymentMethod    string      `json:"paymentMethod" firestore:"paymentMethod"`
	QRCode           string      `json:"qrCode,omitempty" firestore:"qrCode"`
	CreatedAt        time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt" firestore:"updatedAt"`
	PackedAt         *time.Time  `json:"packedAt,omitempty" firestore:"packedAt"`
	OutForDeliveryAt *time.Time  `json:"outForDeliveryAt,omitempty" firestore:"outForDeliveryAt"`
	DeliveredAt      *time.Time  `json:"deliveredAt,omitempty" firestore:"deliveredAt"`
}
