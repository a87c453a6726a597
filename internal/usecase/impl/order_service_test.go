package impl

import (
	"context"
	"log/slog"
	"testing"

	"agriatoo/internal/domain/entity"
	domainerrors "agriatoo/internal/domain/errors"
	"agriatoo/internal/domain/repository"
	mockRepo "agriatoo/internal/mocks/repository"
	mockSvc "agriatoo/internal/mocks/service"
	"agriatoo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	qrService *mockSvc.MockQRCodeService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	fixture := &orderFixture{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		qrService: mockSvc.NewMockQRCodeService(t),
	}
	fixture.service = NewOrderService(OrderServiceParams{
		OrderRepo: fixture.orderRepo,
		QRService: fixture.qrService,
		Logger:    slog.New(slog.DiscardHandler),
	})

	return fixture
}

func TestOrderService_ListOrders(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	expected := []*entity.Order{testOrder("ORD-001"), testOrder("ORD-002")}
	fixture.orderRepo.EXPECT().
		FindBySeller(ctx, testSellerID, entity.OrderStatus(""), 20).
		Return(expected, nil)

	orders, err := fixture.service.ListOrders(ctx, &usecase.ListOrdersInput{
		SellerID: testSellerID,
		Limit:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_ListOrders_ClampsLimit(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	fixture.orderRepo.EXPECT().
		FindBySeller(ctx, testSellerID, entity.OrderStatusReceived, 50).
		Return(nil, nil).
		Twice()

	_, err := fixture.service.ListOrders(ctx, &usecase.ListOrdersInput{
		SellerID: testSellerID,
		Status:   entity.OrderStatusReceived,
		Limit:    0,
	})
	require.NoError(t, err)

	_, err = fixture.service.ListOrders(ctx, &usecase.ListOrdersInput{
		SellerID: testSellerID,
		Status:   entity.OrderStatusReceived,
		Limit:    500,
	})
	require.NoError(t, err)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	fixture.orderRepo.EXPECT().
		FindByOrderID(ctx, testSellerID, "ORD-404").
		Return(nil, repository.ErrOrderNotFound)

	order, err := fixture.service.GetOrder(ctx, testSellerID, "ORD-404")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_ValidTransition(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	order := testOrder("ORD-100")
	order.Status = entity.OrderStatusReceived

	fixture.orderRepo.EXPECT().
		FindByOrderID(ctx, testSellerID, "ORD-100").
		Return(order, nil)
	fixture.orderRepo.EXPECT().
		UpdateStatus(ctx, testSellerID, "ORD-100", entity.OrderStatusPacked, mock.AnythingOfType("time.Time")).
		Return(nil)

	updated, err := fixture.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		SellerID: testSellerID,
		OrderID:  "ORD-100",
		Status:   entity.OrderStatusPacked,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPacked, updated.Status)
	require.NotNil(t, updated.PackedAt)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestOrderService_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	order := testOrder("ORD-101")
	order.Status = entity.OrderStatusDelivered

	fixture.orderRepo.EXPECT().
		FindByOrderID(ctx, testSellerID, "ORD-101").
		Return(order, nil)

	// Terminal states never transition; no write may happen.
	updated, err := fixture.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		SellerID: testSellerID,
		OrderID:  "ORD-101",
		Status:   entity.OrderStatusPacked,
	})
	assert.Nil(t, updated)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatusTransition.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "delivered -> packed")
}

func TestOrderService_UpdateOrderStatus_SkippingStepRejected(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	order := testOrder("ORD-102")
	order.Status = entity.OrderStatusReceived

	fixture.orderRepo.EXPECT().
		FindByOrderID(ctx, testSellerID, "ORD-102").
		Return(order, nil)

	updated, err := fixture.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		SellerID: testSellerID,
		OrderID:  "ORD-102",
		Status:   entity.OrderStatusDelivered,
	})
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatusTransition.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateOrderStatus_DeliveryOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		target entity.OrderStatus
	}{
		{name: "delivered", target: entity.OrderStatusDelivered},
		{name: "not delivered", target: entity.OrderStatusNotDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newOrderFixture(t)
			ctx := context.Background()

			order := testOrder("ORD-103")
			order.Status = entity.OrderStatusOutForDelivery

			fixture.orderRepo.EXPECT().
				FindByOrderID(ctx, testSellerID, "ORD-103").
				Return(order, nil)
			fixture.orderRepo.EXPECT().
				UpdateStatus(ctx, testSellerID, "ORD-103", tt.target, mock.AnythingOfType("time.Time")).
				Return(nil)

			updated, err := fixture.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
				SellerID: testSellerID,
				OrderID:  "ORD-103",
				Status:   tt.target,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.target, updated.Status)
			assert.NotNil(t, updated.DeliveredAt)
		})
	}
}

func TestOrderService_OrderQRCode(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	fixture.orderRepo.EXPECT().
		FindByOrderID(ctx, testSellerID, "ORD-200").
		Return(testOrder("ORD-200"), nil)
	fixture.qrService.EXPECT().
		GenerateOrderQR("ORD-200").
		Return([]byte("png-bytes"), nil)

	png, err := fixture.service.OrderQRCode(ctx, testSellerID, "ORD-200", false)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_OrderQRCode_Printable(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	fixture.orderRepo.EXPECT().
		FindByOrderID(ctx, testSellerID, "ORD-201").
		Return(testOrder("ORD-201"), nil)
	fixture.qrService.EXPECT().
		GeneratePrintableOrderQR("ORD-201").
		Return([]byte("printable-png"), nil)

	png, err := fixture.service.OrderQRCode(ctx, testSellerID, "ORD-201", true)
	require.NoError(t, err)
	assert.Equal(t, []byte("printable-png"), png)
}

func TestOrderService_OrderQRCode_UnownedOrder(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	fixture.orderRepo.EXPECT().
		FindByOrderID(ctx, testSellerID, "ORD-202").
		Return(nil, repository.ErrOrderNotFound)

	png, err := fixture.service.OrderQRCode(ctx, testSellerID, "ORD-202", false)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
