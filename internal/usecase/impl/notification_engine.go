// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"agriatoo/config"
	"agriatoo/internal/domain/entity"
	"agriatoo/internal/domain/repository"
	"agriatoo/internal/domain/service"
	"agriatoo/internal/errors"
	"agriatoo/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultLogCapacity      = 50
	defaultOrderFeedLimit   = 50
	defaultStartupShowDelay = 100 * time.Millisecond

	// subscriberBuffer bounds each alert stream channel; slow consumers
	// are skipped rather than blocking delta handling.
	subscriberBuffer = 16
)

// notificationEngine implements usecase.NotificationEngine for a single
// seller session. All session state lives on the instance; nothing is
// shared between engines.
type notificationEngine struct {
	sellerID    string
	pendingRepo repository.PendingNotificationRepository
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	logger      *slog.Logger

	startupShowDelay time.Duration
	logCapacity      int
	orderFeedLimit   int

	mu              sync.Mutex
	started         bool
	stopped         bool
	activeModals    map[string]*usecase.Alert
	modalOrder      []string // orderIDs in show order
	processedOrders map[string]struct{}
	notifications   []entity.Notification // newest first, capped at logCapacity
	unreadCount     int
	subscribers     map[chan usecase.AlertEvent]struct{}

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNotificationEngine creates an alert engine for one seller session.
// The engine does nothing until Start is called.
func NewNotificationEngine(
	sellerID string,
	pendingRepo repository.PendingNotificationRepository,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	cfg *config.NotificationConfig,
	logger *slog.Logger,
) usecase.NotificationEngine {
	engine := &notificationEngine{
		sellerID:         sellerID,
		pendingRepo:      pendingRepo,
		orderRepo:        orderRepo,
		publisher:        publisher,
		logger:           logger.With(slog.String("sellerID", sellerID)),
		startupShowDelay: defaultStartupShowDelay,
		logCapacity:      defaultLogCapacity,
		orderFeedLimit:   defaultOrderFeedLimit,
		activeModals:     make(map[string]*usecase.Alert),
		processedOrders:  make(map[string]struct{}),
		subscribers:      make(map[chan usecase.AlertEvent]struct{}),
	}

	if cfg != nil {
		if cfg.StartupShowDelay > 0 {
			engine.startupShowDelay = cfg.StartupShowDelay
		}
		if cfg.LogCapacity > 0 {
			engine.logCapacity = cfg.LogCapacity
		}
		if cfg.OrderFeedLimit > 0 {
			engine.orderFeedLimit = cfg.OrderFeedLimit
		}
	}

	return engine
}

// SellerID returns the owning seller.
func (e *notificationEngine) SellerID() string {
	return e.sellerID
}

// Start runs the startup reconciliation pass and opens both live
// subscriptions. A read failure during reconciliation is logged and
// skipped; the live subscription's snapshot redelivery is the retry. A
// subscription setup failure is returned: that path stays dead until the
// engine is restarted.
func (e *notificationEngine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()

		return errors.New("notification engine already started")
	}
	e.started = true
	e.mu.Unlock()

	engineCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	e.reconcilePending(engineCtx)

	pendingFeed, err := e.pendingRepo.WatchUndismissed(engineCtx, e.sellerID)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch pending notifications")
	}

	orderFeed, err := e.orderRepo.WatchBySeller(engineCtx, e.sellerID, e.orderFeedLimit)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to watch orders")
	}

	e.wg.Add(2)
	go e.consumePendingFeed(engineCtx, pendingFeed)
	go e.consumeOrderFeed(engineCtx, orderFeed)

	return nil
}

// Stop cancels both live subscriptions and blocks until their consumers
// drain. Stopping twice is safe.
func (e *notificationEngine) Stop() {
	e.mu.Lock()
	if e.stopped || e.cancel == nil {
		e.mu.Unlock()

		return
	}
	e.stopped = true
	e.mu.Unlock()

	e.cancel()
	e.wg.Wait()

	e.mu.Lock()
	for ch := range e.subscribers {
		close(ch)
	}
	e.subscribers = make(map[chan usecase.AlertEvent]struct{})
	e.mu.Unlock()
}

// reconcilePending loads the seller's undismissed records and schedules
// their alerts. Each alert is delayed a small fixed amount so a seller
// with many pending orders is not hit by a modal stampede at login.
func (e *notificationEngine) reconcilePending(ctx context.Context) {
	records, err := e.pendingRepo.FindUndismissed(ctx, e.sellerID)
	if err != nil {
		e.logger.Error("Failed to load pending notifications", slog.Any("error", err))

		return
	}

	for _, record := range records {
		if record.Dismissed {
			continue
		}

		snapshot := record.OrderData
		e.appendLog(entity.NotificationTypeNewOrder, "Pending Order", pendingOrderMessage(&snapshot), snapshot.OrderID)

		e.wg.Add(1)
		timer := time.AfterFunc(e.startupShowDelay, func() {
			defer e.wg.Done()
			if ctx.Err() != nil {
				return
			}
			e.showAlert(&snapshot, true)
		})

		// Release the timer goroutine's wait slot if the engine stops
		// before it fires.
		go func() {
			<-ctx.Done()
			if timer.Stop() {
				e.wg.Done()
			}
		}()
	}

	e.logger.Debug("Startup reconciliation scheduled", slog.Int("pending", len(records)))
}

// consumePendingFeed retracts alerts when their durable record is removed
// from the undismissed set or flagged dismissed, so a dismissal on
// another device retracts the alert here too.
func (e *notificationEngine) consumePendingFeed(ctx context.Context, feed <-chan repository.PendingNotificationDelta) {
	defer e.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case delta, ok := <-feed:
			if !ok {
				return
			}
			if delta.Record == nil {
				continue
			}
			if delta.Kind == repository.ChangeRemoved || (delta.Kind == repository.ChangeModified && delta.Record.Dismissed) {
				e.removeAlert(delta.Record.OrderID)
			}
		}
	}
}

// consumeOrderFeed runs the live new-order detection path.
func (e *notificationEngine) consumeOrderFeed(ctx context.Context, feed <-chan repository.OrderDelta) {
	defer e.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case delta, ok := <-feed:
			if !ok {
				return
			}
			if delta.Kind != repository.ChangeAdded || delta.Order == nil {
				continue
			}
			e.handleNewOrder(ctx, delta.Order)
		}
	}
}

// handleNewOrder decides whether an added order delta is genuinely new.
// Idempotent against replayed snapshots: an order already processed this
// session is skipped, and an order with an existing pending record is
// marked processed without re-alerting. Persistence failures are logged
// and the order skipped for this cycle; the feed's redelivery retries.
func (e *notificationEngine) handleNewOrder(ctx context.Context, order *entity.Order) {
	e.mu.Lock()
	_, processed := e.processedOrders[order.OrderID]
	e.mu.Unlock()
	if processed {
		return
	}

	existing, err := e.pendingRepo.Get(ctx, e.sellerID, order.OrderID)
	switch {
	case errors.Is(err, repository.ErrPendingNotificationNotFound):
		e.alertNewOrder(ctx, order)
	case err != nil:
		e.logger.Error("Failed to check existing pending notification",
			slog.String("orderID", order.OrderID), slog.Any("error", err))
	case existing != nil:
		// The persisted-record path already surfaced this order.
		e.markProcessed(order.OrderID)
	}
}

// alertNewOrder persists the pending record, then surfaces the alert.
// The Save is a keyed create-or-replace: if two near-simultaneous deltas
// race past the existence check, the second write overwrites the first
// and the persisted state stays single-valued. A double audio cue is
// possible in that window and accepted.
func (e *notificationEngine) alertNewOrder(ctx context.Context, order *entity.Order) {
	now := time.Now()
	snapshot := entity.OrderSnapshot{
		ID:           order.ID,
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount,
		Items:        order.Items,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	record := &entity.PendingNotification{
		SellerID:  e.sellerID,
		OrderID:   order.OrderID,
		OrderData: snapshot,
		Timestamp: now.UnixMilli(),
		Dismissed: false,
		CreatedAt: now,
	}

	if err := e.pendingRepo.Save(ctx, record); err != nil {
		e.logger.Error("Failed to save pending notification",
			slog.String("orderID", order.OrderID), slog.Any("error", err))

		return
	}

	e.markProcessed(order.OrderID)
	e.showAlert(&snapshot, true)
	e.appendLog(entity.NotificationTypeNewOrder, "New Order Received", newOrderMessage(&snapshot), order.OrderID)
	e.publishEvent(ctx, "created", &snapshot)
}

func (e *notificationEngine) markProcessed(orderID string) {
	e.mu.Lock()
	e.processedOrders[orderID] = struct{}{}
	e.mu.Unlock()
}

// showAlert makes the order's alert visible. Showing an order already in
// the active set is a no-op, which is what makes replayed deltas and the
// dual startup/live paths safe.
func (e *notificationEngine) showAlert(snapshot *entity.OrderSnapshot, sound bool) {
	e.mu.Lock()
	if _, ok := e.activeModals[snapshot.OrderID]; ok {
		e.mu.Unlock()

		return
	}

	now := time.Now()
	e.activeModals[snapshot.OrderID] = &usecase.Alert{Order: *snapshot, ShownAt: now}
	e.modalOrder = append(e.modalOrder, snapshot.OrderID)
	e.mu.Unlock()

	e.emit(usecase.AlertEvent{
		Kind:      usecase.AlertShown,
		OrderID:   snapshot.OrderID,
		Order:     snapshot,
		Sound:     sound,
		Timestamp: now,
	})
}

// removeAlert retracts the order's alert if visible.
func (e *notificationEngine) removeAlert(orderID string) {
	e.mu.Lock()
	if _, ok := e.activeModals[orderID]; !ok {
		e.mu.Unlock()

		return
	}

	delete(e.activeModals, orderID)
	for i, id := range e.modalOrder {
		if id == orderID {
			e.modalOrder = append(e.modalOrder[:i], e.modalOrder[i+1:]...)

			break
		}
	}
	e.mu.Unlock()

	e.emit(usecase.AlertEvent{
		Kind:      usecase.AlertRemoved,
		OrderID:   orderID,
		Timestamp: time.Now(),
	})
}

// Dismiss acknowledges the alert: durable record first, then local
// retraction. Write failures are logged and swallowed; the pending feed
// redelivers state on reconnect, which is the retry mechanism.
func (e *notificationEngine) Dismiss(ctx context.Context, orderID string) error {
	if err := e.pendingRepo.MarkDismissed(ctx, e.sellerID, orderID, time.Now()); err != nil {
		if errors.Is(err, repository.ErrPendingNotificationNotFound) {
			return usecase.ErrUnknownOrderAlert
		}
		e.logger.Error("Failed to dismiss pending notification",
			slog.String("orderID", orderID), slog.Any("error", err))

		return nil
	}

	e.removeAlert(orderID)

	snapshot := entity.OrderSnapshot{OrderID: orderID}
	e.publishEvent(ctx, "dismissed", &snapshot)

	return nil
}

// Subscribe registers an alert stream consumer.
func (e *notificationEngine) Subscribe() (<-chan usecase.AlertEvent, func()) {
	ch := make(chan usecase.AlertEvent, subscriberBuffer)

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		close(ch)

		return ch, func() {}
	}
	e.subscribers[ch] = struct{}{}
	e.mu.Unlock()

	unsubscribe := func() {
		e.mu.Lock()
		if _, ok := e.subscribers[ch]; ok {
			delete(e.subscribers, ch)
			close(ch)
		}
		e.mu.Unlock()
	}

	return ch, unsubscribe
}

// emit fans an event out to all subscribers. Slow consumers are skipped
// to avoid blocking delta handling.
func (e *notificationEngine) emit(event usecase.AlertEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for ch := range e.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// VisibleAlerts returns the currently-visible alert set, oldest first.
func (e *notificationEngine) VisibleAlerts() []usecase.Alert {
	e.mu.Lock()
	defer e.mu.Unlock()

	alerts := make([]usecase.Alert, 0, len(e.modalOrder))
	for _, orderID := range e.modalOrder {
		if alert, ok := e.activeModals[orderID]; ok {
			alerts = append(alerts, *alert)
		}
	}

	return alerts
}

// Feed returns a copy of the notification log and the unread count.
func (e *notificationEngine) Feed() *usecase.NotificationFeed {
	e.mu.Lock()
	defer e.mu.Unlock()

	feed := &usecase.NotificationFeed{
		Notifications: make([]entity.Notification, len(e.notifications)),
		UnreadCount:   e.unreadCount,
	}
	copy(feed.Notifications, e.notifications)

	return feed
}

// MarkRead marks a single log entry read.
func (e *notificationEngine) MarkRead(notificationID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.notifications {
		if e.notifications[i].ID != notificationID {
			continue
		}
		if !e.notifications[i].Read {
			e.notifications[i].Read = true
			if e.unreadCount > 0 {
				e.unreadCount--
			}
		}

		return nil
	}

	return usecase.ErrUnknownNotification
}

// MarkAllRead marks every log entry read and zeroes the unread count.
func (e *notificationEngine) MarkAllRead() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.notifications {
		e.notifications[i].Read = true
	}
	e.unreadCount = 0
}

// appendLog prepends an entry to the bounded notification log.
func (e *notificationEngine) appendLog(kind entity.NotificationType, title, message, orderID string) {
	entry := entity.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		OrderID:   orderID,
		Timestamp: time.Now(),
		Read:      false,
	}

	e.mu.Lock()
	e.notifications = append([]entity.Notification{entry}, e.notifications...)
	e.unreadCount++
	if len(e.notifications) > e.logCapacity {
		for _, dropped := range e.notifications[e.logCapacity:] {
			if !dropped.Read && e.unreadCount > 0 {
				e.unreadCount--
			}
		}
		e.notifications = e.notifications[:e.logCapacity]
	}
	e.mu.Unlock()
}

// pendingOrderMessage renders the notification-center line for an alert
// restored during startup reconciliation.
func pendingOrderMessage(snapshot *entity.OrderSnapshot) string {
	return fmt.Sprintf("Order %s from %s - ₹%.2f", snapshot.OrderID, snapshot.CustomerName, snapshot.TotalAmount)
}

// newOrderMessage renders the notification-center line for a freshly
// detected order.
func newOrderMessage(snapshot *entity.OrderSnapshot) string {
	return fmt.Sprintf("Order %s from %s - ₹%.2f", snapshot.OrderID, snapshot.CustomerName, snapshot.TotalAmount)
}

// publishEvent emits a lifecycle event for downstream consumers. Event
// bus failures never affect the alert path.
func (e *notificationEngine) publishEvent(ctx context.Context, kind string, snapshot *entity.OrderSnapshot) {
	if e.publisher == nil {
		return
	}

	event := &service.OrderAlertEvent{
		Kind:         kind,
		SellerID:     e.sellerID,
		OrderID:      snapshot.OrderID,
		CustomerName: snapshot.CustomerName,
		TotalAmount:  snapshot.TotalAmount,
	}
	if err := e.publisher.PublishOrderAlertEvent(ctx, event); err != nil {
		e.logger.Warn("Failed to publish order alert event",
			slog.String("kind", kind), slog.String("orderID", snapshot.OrderID), slog.Any("error", err))
	}
}
