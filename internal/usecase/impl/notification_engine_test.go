package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"agriatoo/config"
	"agriatoo/internal/domain/entity"
	"agriatoo/internal/domain/repository"
	"agriatoo/internal/domain/service"
	mockRepo "agriatoo/internal/mocks/repository"
	mockSvc "agriatoo/internal/mocks/service"
	"agriatoo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSellerID = "seller-1"
	waitTimeout  = 2 * time.Second
	pollInterval = 5 * time.Millisecond
)

type engineFixture struct {
	engine      usecase.NotificationEngine
	pendingRepo *mockRepo.MockPendingNotificationRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockSvc.MockEventPublisher
	pendingFeed chan repository.PendingNotificationDelta
	orderFeed   chan repository.OrderDelta
}

func newEngineFixture(t *testing.T, cfg *config.NotificationConfig) *engineFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.NotificationConfig{}
	}
	if cfg.StartupShowDelay == 0 {
		cfg.StartupShowDelay = time.Millisecond
	}

	fixture := &engineFixture{
		pendingRepo: mockRepo.NewMockPendingNotificationRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		pendingFeed: make(chan repository.PendingNotificationDelta),
		orderFeed:   make(chan repository.OrderDelta),
	}
	fixture.engine = NewNotificationEngine(
		testSellerID,
		fixture.pendingRepo,
		fixture.orderRepo,
		fixture.publisher,
		cfg,
		slog.New(slog.DiscardHandler),
	)

	return fixture
}

// start wires the watch expectations to the fixture's channels and runs
// the engine's startup pass against the given pending records.
func (f *engineFixture) start(t *testing.T, pending []*entity.PendingNotification) {
	t.Helper()

	f.pendingRepo.EXPECT().
		FindUndismissed(mock.Anything, testSellerID).
		Return(pending, nil)
	f.pendingRepo.EXPECT().
		WatchUndismissed(mock.Anything, testSellerID).
		Return(f.pendingFeed, nil)
	f.orderRepo.EXPECT().
		WatchBySeller(mock.Anything, testSellerID, mock.AnythingOfType("int")).
		Return(f.orderFeed, nil)

	require.NoError(t, f.engine.Start(context.Background()))
	t.Cleanup(f.engine.Stop)
}

func testOrder(orderID string) *entity.Order {
	return &entity.Order{
		ID:           "doc-" + orderID,
		OrderID:      orderID,
		CustomerName: "Ravi Kumar",
		SellerID:     testSellerID,
		Items: []entity.OrderItem{
			{ProductID: "prod-1", ProductName: "Tomatoes", Quantity: 2, Price: 40},
		},
		TotalAmount: 80,
		Status:      entity.OrderStatusReceived,
		CreatedAt:   time.Now(),
	}
}

func testPendingRecord(orderID string) *entity.PendingNotification {
	order := testOrder(orderID)

	return &entity.PendingNotification{
		SellerID: testSellerID,
		OrderID:  orderID,
		OrderData: entity.OrderSnapshot{
			ID:           order.ID,
			OrderID:      order.OrderID,
			CustomerName: order.CustomerName,
			TotalAmount:  order.TotalAmount,
			Items:        order.Items,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt,
		},
		Timestamp: time.Now().UnixMilli(),
	}
}

func visibleOrderIDs(engine usecase.NotificationEngine) []string {
	alerts := engine.VisibleAlerts()
	ids := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		ids = append(ids, alert.Order.OrderID)
	}

	return ids
}

func TestNotificationEngine_Startup_ShowsUndismissedRecords(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, []*entity.PendingNotification{
		testPendingRecord("ORD-001"),
		testPendingRecord("ORD-002"),
	})

	require.Eventually(t, func() bool {
		return len(fixture.engine.VisibleAlerts()) == 2
	}, waitTimeout, pollInterval)

	assert.ElementsMatch(t, []string{"ORD-001", "ORD-002"}, visibleOrderIDs(fixture.engine))

	feed := fixture.engine.Feed()
	require.Len(t, feed.Notifications, 2)
	assert.Equal(t, 2, feed.UnreadCount)
	for _, notification := range feed.Notifications {
		assert.Equal(t, entity.NotificationTypeNewOrder, notification.Type)
		assert.Equal(t, "Pending Order", notification.Title)
		assert.False(t, notification.Read)
	}
}

func TestNotificationEngine_Startup_NothingPending(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	assert.Empty(t, fixture.engine.VisibleAlerts())
	feed := fixture.engine.Feed()
	assert.Empty(t, feed.Notifications)
	assert.Zero(t, feed.UnreadCount)
}

func TestNotificationEngine_Startup_SkipsDismissedRecords(t *testing.T) {
	dismissed := testPendingRecord("ORD-003")
	dismissed.Dismissed = true

	fixture := newEngineFixture(t, nil)
	fixture.start(t, []*entity.PendingNotification{dismissed})

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, fixture.engine.VisibleAlerts())
	assert.Empty(t, fixture.engine.Feed().Notifications)
}

func TestNotificationEngine_StartTwice(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	assert.Error(t, fixture.engine.Start(context.Background()))
}

func TestNotificationEngine_NewOrder_AlertsAndPersists(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	events, unsubscribe := fixture.engine.Subscribe()
	defer unsubscribe()

	order := testOrder("ORD-100")

	fixture.pendingRepo.EXPECT().
		Get(mock.Anything, testSellerID, "ORD-100").
		Return(nil, repository.ErrPendingNotificationNotFound)
	fixture.pendingRepo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(record *entity.PendingNotification) bool {
			return record.SellerID == testSellerID &&
				record.OrderID == "ORD-100" &&
				!record.Dismissed &&
				record.OrderData.CustomerName == order.CustomerName
		})).
		Return(nil)
	fixture.publisher.EXPECT().
		PublishOrderAlertEvent(mock.Anything, mock.MatchedBy(func(event *service.OrderAlertEvent) bool {
			return event.Kind == "created" && event.OrderID == "ORD-100"
		})).
		Return(nil)

	fixture.orderFeed <- repository.OrderDelta{Kind: repository.ChangeAdded, Order: order}

	select {
	case event := <-events:
		assert.Equal(t, usecase.AlertShown, event.Kind)
		assert.Equal(t, "ORD-100", event.OrderID)
		assert.True(t, event.Sound)
		require.NotNil(t, event.Order)
		assert.Equal(t, order.CustomerName, event.Order.CustomerName)
	case <-time.After(waitTimeout):
		t.Fatal("expected an alert event")
	}

	assert.Equal(t, []string{"ORD-100"}, visibleOrderIDs(fixture.engine))

	feed := fixture.engine.Feed()
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "New Order Received", feed.Notifications[0].Title)
	assert.Contains(t, feed.Notifications[0].Message, "ORD-100")
	assert.Equal(t, 1, feed.UnreadCount)
}

func TestNotificationEngine_NewOrder_ExistingRecordNotRealerted(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	checked := make(chan struct{})
	fixture.pendingRepo.EXPECT().
		Get(mock.Anything, testSellerID, "ORD-200").
		RunAndReturn(func(context.Context, string, string) (*entity.PendingNotification, error) {
			defer close(checked)

			return testPendingRecord("ORD-200"), nil
		})

	fixture.orderFeed <- repository.OrderDelta{Kind: repository.ChangeAdded, Order: testOrder("ORD-200")}

	select {
	case <-checked:
	case <-time.After(waitTimeout):
		t.Fatal("expected the pending record lookup")
	}

	assert.Empty(t, fixture.engine.VisibleAlerts())
	assert.Empty(t, fixture.engine.Feed().Notifications)
}

func TestNotificationEngine_NewOrder_RedeliveredDeltaIsIdempotent(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	order := testOrder("ORD-300")

	// The existence check and the write must each run exactly once even
	// though the feed delivers the same order twice, as it does after a
	// stream reconnect.
	fixture.pendingRepo.EXPECT().
		Get(mock.Anything, testSellerID, "ORD-300").
		Return(nil, repository.ErrPendingNotificationNotFound).
		Once()
	fixture.pendingRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.PendingNotification")).
		Return(nil).
		Once()
	fixture.publisher.EXPECT().
		PublishOrderAlertEvent(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	fixture.orderFeed <- repository.OrderDelta{Kind: repository.ChangeAdded, Order: order}

	require.Eventually(t, func() bool {
		return len(fixture.engine.VisibleAlerts()) == 1
	}, waitTimeout, pollInterval)

	fixture.orderFeed <- repository.OrderDelta{Kind: repository.ChangeAdded, Order: order}

	// Drain past the replay with a sentinel so the assertion below runs
	// after the duplicate was handled.
	sentinelChecked := make(chan struct{})
	fixture.pendingRepo.EXPECT().
		Get(mock.Anything, testSellerID, "ORD-301").
		RunAndReturn(func(context.Context, string, string) (*entity.PendingNotification, error) {
			defer close(sentinelChecked)

			return testPendingRecord("ORD-301"), nil
		})
	fixture.orderFeed <- repository.OrderDelta{Kind: repository.ChangeAdded, Order: testOrder("ORD-301")}

	select {
	case <-sentinelChecked:
	case <-time.After(waitTimeout):
		t.Fatal("expected the sentinel lookup")
	}

	assert.Equal(t, []string{"ORD-300"}, visibleOrderIDs(fixture.engine))
	assert.Len(t, fixture.engine.Feed().Notifications, 1)
}

func TestNotificationEngine_NewOrder_SaveFailureSkipsAlert(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	saved := make(chan struct{})
	fixture.pendingRepo.EXPECT().
		Get(mock.Anything, testSellerID, "ORD-400").
		Return(nil, repository.ErrPendingNotificationNotFound)
	fixture.pendingRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.PendingNotification")).
		RunAndReturn(func(context.Context, *entity.PendingNotification) error {
			defer close(saved)

			return errors.New("firestore unavailable")
		})

	fixture.orderFeed <- repository.OrderDelta{Kind: repository.ChangeAdded, Order: testOrder("ORD-400")}

	select {
	case <-saved:
	case <-time.After(waitTimeout):
		t.Fatal("expected the save attempt")
	}

	assert.Empty(t, fixture.engine.VisibleAlerts())
}

func TestNotificationEngine_Dismiss_RemovesAlert(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, []*entity.PendingNotification{testPendingRecord("ORD-500")})

	require.Eventually(t, func() bool {
		return len(fixture.engine.VisibleAlerts()) == 1
	}, waitTimeout, pollInterval)

	events, unsubscribe := fixture.engine.Subscribe()
	defer unsubscribe()

	ctx := context.Background()
	fixture.pendingRepo.EXPECT().
		MarkDismissed(ctx, testSellerID, "ORD-500", mock.AnythingOfType("time.Time")).
		Return(nil)
	fixture.publisher.EXPECT().
		PublishOrderAlertEvent(ctx, mock.MatchedBy(func(event *service.OrderAlertEvent) bool {
			return event.Kind == "dismissed" && event.OrderID == "ORD-500"
		})).
		Return(nil)

	require.NoError(t, fixture.engine.Dismiss(ctx, "ORD-500"))
	assert.Empty(t, fixture.engine.VisibleAlerts())

	select {
	case event := <-events:
		assert.Equal(t, usecase.AlertRemoved, event.Kind)
		assert.Equal(t, "ORD-500", event.OrderID)
	case <-time.After(waitTimeout):
		t.Fatal("expected a removal event")
	}
}

func TestNotificationEngine_Dismiss_UnknownOrder(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	ctx := context.Background()
	fixture.pendingRepo.EXPECT().
		MarkDismissed(ctx, testSellerID, "ORD-999", mock.AnythingOfType("time.Time")).
		Return(repository.ErrPendingNotificationNotFound)

	err := fixture.engine.Dismiss(ctx, "ORD-999")
	assert.ErrorIs(t, err, usecase.ErrUnknownOrderAlert)
}

func TestNotificationEngine_Dismiss_WriteFailureIsSwallowed(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, []*entity.PendingNotification{testPendingRecord("ORD-501")})

	require.Eventually(t, func() bool {
		return len(fixture.engine.VisibleAlerts()) == 1
	}, waitTimeout, pollInterval)

	ctx := context.Background()
	fixture.pendingRepo.EXPECT().
		MarkDismissed(ctx, testSellerID, "ORD-501", mock.AnythingOfType("time.Time")).
		Return(errors.New("firestore unavailable"))

	require.NoError(t, fixture.engine.Dismiss(ctx, "ORD-501"))

	// The alert stays visible; the live feed is the retry path.
	assert.Equal(t, []string{"ORD-501"}, visibleOrderIDs(fixture.engine))
}

func TestNotificationEngine_ExternalDismissal_RetractsAlert(t *testing.T) {
	record := testPendingRecord("ORD-600")

	fixture := newEngineFixture(t, nil)
	fixture.start(t, []*entity.PendingNotification{record})

	require.Eventually(t, func() bool {
		return len(fixture.engine.VisibleAlerts()) == 1
	}, waitTimeout, pollInterval)

	// The dismissed flag flipping on another device removes the record
	// from the undismissed result set.
	fixture.pendingFeed <- repository.PendingNotificationDelta{
		Kind:   repository.ChangeRemoved,
		Record: record,
	}

	require.Eventually(t, func() bool {
		return len(fixture.engine.VisibleAlerts()) == 0
	}, waitTimeout, pollInterval)
}

func TestNotificationEngine_MarkRead(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, []*entity.PendingNotification{
		testPendingRecord("ORD-700"),
		testPendingRecord("ORD-701"),
	})

	feed := fixture.engine.Feed()
	require.Len(t, feed.Notifications, 2)
	require.Equal(t, 2, feed.UnreadCount)

	require.NoError(t, fixture.engine.MarkRead(feed.Notifications[0].ID))

	feed = fixture.engine.Feed()
	assert.True(t, feed.Notifications[0].Read)
	assert.False(t, feed.Notifications[1].Read)
	assert.Equal(t, 1, feed.UnreadCount)

	// Marking the same entry again does not drive the count negative.
	require.NoError(t, fixture.engine.MarkRead(feed.Notifications[0].ID))
	assert.Equal(t, 1, fixture.engine.Feed().UnreadCount)

	assert.ErrorIs(t, fixture.engine.MarkRead("no-such-id"), usecase.ErrUnknownNotification)
}

func TestNotificationEngine_MarkAllRead(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, []*entity.PendingNotification{
		testPendingRecord("ORD-702"),
		testPendingRecord("ORD-703"),
	})

	fixture.engine.MarkAllRead()

	feed := fixture.engine.Feed()
	assert.Zero(t, feed.UnreadCount)
	for _, notification := range feed.Notifications {
		assert.True(t, notification.Read)
	}
}

func TestNotificationEngine_LogCapacity(t *testing.T) {
	records := make([]*entity.PendingNotification, 7)
	for i := range records {
		records[i] = testPendingRecord("ORD-80" + string(rune('0'+i)))
	}

	fixture := newEngineFixture(t, &config.NotificationConfig{LogCapacity: 5})
	fixture.start(t, records)

	feed := fixture.engine.Feed()
	require.Len(t, feed.Notifications, 5)
	assert.Equal(t, 5, feed.UnreadCount)
	// Entries are newest first; the two oldest were trimmed.
	assert.Equal(t, records[6].OrderID, feed.Notifications[0].OrderID)
}

func TestNotificationEngine_Subscribe_FanOut(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	first, cancelFirst := fixture.engine.Subscribe()
	second, cancelSecond := fixture.engine.Subscribe()
	defer cancelSecond()

	fixture.pendingRepo.EXPECT().
		Get(mock.Anything, testSellerID, "ORD-900").
		Return(nil, repository.ErrPendingNotificationNotFound)
	fixture.pendingRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.PendingNotification")).
		Return(nil)
	fixture.publisher.EXPECT().
		PublishOrderAlertEvent(mock.Anything, mock.Anything).
		Return(nil)

	fixture.orderFeed <- repository.OrderDelta{Kind: repository.ChangeAdded, Order: testOrder("ORD-900")}

	for _, events := range []<-chan usecase.AlertEvent{first, second} {
		select {
		case event := <-events:
			assert.Equal(t, usecase.AlertShown, event.Kind)
			assert.Equal(t, "ORD-900", event.OrderID)
		case <-time.After(waitTimeout):
			t.Fatal("expected both subscribers to receive the event")
		}
	}

	cancelFirst()
	_, open := <-first
	assert.False(t, open)
}

func TestNotificationEngine_Stop_ClosesSubscribers(t *testing.T) {
	fixture := newEngineFixture(t, nil)
	fixture.start(t, nil)

	events, unsubscribe := fixture.engine.Subscribe()
	defer unsubscribe()

	fixture.engine.Stop()

	_, open := <-events
	assert.False(t, open)

	// Subscribing after the engine stopped yields a closed channel.
	late, cancelLate := fixture.engine.Subscribe()
	defer cancelLate()
	_, open = <-late
	assert.False(t, open)
}
