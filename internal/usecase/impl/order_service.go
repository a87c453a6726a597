package impl

import (
	"context"
	"log/slog"
	"time"

	"agriatoo/internal/domain/entity"
	domainerrors "agriatoo/internal/domain/errors"
	"agriatoo/internal/domain/repository"
	"agriatoo/internal/domain/service"
	"agriatoo/internal/errors"
	"agriatoo/internal/usecase"

	"go.uber.org/fx"
)

const defaultOrderListLimit = 50

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

// ListOrders retrieves the seller's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	limit := input.Limit
	if limit <= 0 || limit > defaultOrderListLimit {
		limit = defaultOrderListLimit
	}

	orders, err := srv.orderRepo.FindBySeller(ctx, input.SellerID, input.Status, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves one order by tracking identifier.
func (srv *orderService) GetOrder(ctx context.Context, sellerID, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByOrderID(ctx, sellerID, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// UpdateOrderStatus advances the lifecycle; illegal transitions are
// rejected before any write.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, input.SellerID, input.OrderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidStatusTransition.
			WithDetails(string(order.Status) + " -> " + string(input.Status))
	}

	now := time.Now()
	if err := srv.orderRepo.UpdateStatus(ctx, input.SellerID, input.OrderID, input.Status, now); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("Order status updated",
		slog.String("orderID", input.OrderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(input.Status)))

	order.Status = input.Status
	order.UpdatedAt = now
	switch input.Status {
	case entity.OrderStatusPacked:
		order.PackedAt = &now
	case entity.OrderStatusOutForDelivery:
		order.OutForDeliveryAt = &now
	case entity.OrderStatusDelivered, entity.OrderStatusNotDelivered:
		order.DeliveredAt = &now
	}

	return order, nil
}

// OrderQRCode renders the order's tracking QR code as PNG.
func (srv *orderService) OrderQRCode(ctx context.Context, sellerID, orderID string, printable bool) ([]byte, error) {
	// Ownership check before rendering anything.
	if _, err := srv.GetOrder(ctx, sellerID, orderID); err != nil {
		return nil, err
	}

	if printable {
		png, err := srv.qrService.GeneratePrintableOrderQR(orderID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate printable QR code")
		}

		return png, nil
	}

	png, err := srv.qrService.GenerateOrderQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
