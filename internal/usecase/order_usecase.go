package usecase

import (
	"context"

	"agriatoo/internal/domain/entity"
)

// ListOrdersInput filters the seller's order listing.
type ListOrdersInput struct {
	SellerID string
	Status   entity.OrderStatus
	Limit    int
}

// UpdateOrderStatusInput advances one order's lifecycle status.
type UpdateOrderStatusInput struct {
	SellerID string
	OrderID  string
	Status   entity.OrderStatus `json:"status" validate:"required"`
}

// OrderUsecase defines the interface for the seller's order dashboard.
type OrderUsecase interface {
	// ListOrders retrieves the seller's orders, newest first.
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)

	// GetOrder retrieves one order by tracking identifier.
	GetOrder(ctx context.Context, sellerID, orderID string) (*entity.Order, error)

	// UpdateOrderStatus advances the lifecycle; illegal transitions are
	// rejected.
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)

	// OrderQRCode renders the order's tracking QR code as PNG. Printable
	// selects the high error-correction variant for thermal printers.
	OrderQRCode(ctx context.Context, sellerID, orderID string, printable bool) ([]byte, error)
}
