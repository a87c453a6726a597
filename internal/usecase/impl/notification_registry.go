package impl

import (
	"context"
	"log/slog"
	"sync"

	"agriatoo/config"
	"agriatoo/internal/domain/repository"
	"agriatoo/internal/domain/service"
	"agriatoo/internal/errors"
	"agriatoo/internal/usecase"

	"go.uber.org/fx"
)

// notificationRegistry hands out one running alert engine per seller and
// tears them down on logout or service shutdown.
type notificationRegistry struct {
	pendingRepo repository.PendingNotificationRepository
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	cfg         *config.NotificationConfig
	logger      *slog.Logger

	mu      sync.Mutex
	engines map[string]usecase.NotificationEngine
}

// NotificationRegistryParams holds dependencies for the registry, injected by Fx.
type NotificationRegistryParams struct {
	fx.In

	PendingRepo repository.PendingNotificationRepository
	OrderRepo   repository.OrderRepository
	Publisher   service.EventPublisher `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewNotificationRegistry is the constructor for the engine registry.
func NewNotificationRegistry(params NotificationRegistryParams) usecase.NotificationUsecase {
	var notificationCfg *config.NotificationConfig
	if params.Config != nil {
		notificationCfg = params.Config.Notification
	}

	return &notificationRegistry{
		pendingRepo: params.PendingRepo,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		cfg:         notificationCfg,
		logger:      params.Logger,
		engines:     make(map[string]usecase.NotificationEngine),
	}
}

// EngineFor returns the seller's running engine, starting one if needed.
// The engine's lifetime is detached from the request context: it runs
// until Release or Shutdown.
func (r *notificationRegistry) EngineFor(ctx context.Context, sellerID string) (usecase.NotificationEngine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if engine, ok := r.engines[sellerID]; ok {
		return engine, nil
	}

	engine := NewNotificationEngine(sellerID, r.pendingRepo, r.orderRepo, r.publisher, r.cfg, r.logger)
	if err := engine.Start(context.WithoutCancel(ctx)); err != nil {
		return nil, errors.Wrapf(err, "failed to start alert engine for seller %s", sellerID)
	}

	r.engines[sellerID] = engine
	r.logger.Info("Alert engine started", slog.String("sellerID", sellerID))

	return engine, nil
}

// Release stops and removes the seller's engine, if any.
func (r *notificationRegistry) Release(sellerID string) {
	r.mu.Lock()
	engine, ok := r.engines[sellerID]
	delete(r.engines, sellerID)
	r.mu.Unlock()

	if !ok {
		return
	}

	engine.Stop()
	r.logger.Info("Alert engine stopped", slog.String("sellerID", sellerID))
}

// Shutdown stops all engines.
func (r *notificationRegistry) Shutdown() {
	r.mu.Lock()
	engines := make([]usecase.NotificationEngine, 0, len(r.engines))
	for _, engine := range r.engines {
		engines = append(engines, engine)
	}
	r.engines = make(map[string]usecase.NotificationEngine)
	r.mu.Unlock()

	for _, engine := range engines {
		engine.Stop()
	}
}
