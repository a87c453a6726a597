package impl

import (
	"context"
	"log/slog"
	"testing"

	"agriatoo/config"
	"agriatoo/internal/domain/repository"
	mockRepo "agriatoo/internal/mocks/repository"
	"agriatoo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registryFixture struct {
	registry    usecase.NotificationUsecase
	pendingRepo *mockRepo.MockPendingNotificationRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func newRegistryFixture(t *testing.T) *registryFixture {
	t.Helper()

	fixture := &registryFixture{
		pendingRepo: mockRepo.NewMockPendingNotificationRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
	}
	fixture.registry = NewNotificationRegistry(NotificationRegistryParams{
		PendingRepo: fixture.pendingRepo,
		OrderRepo:   fixture.orderRepo,
		Config:      &config.Config{},
		Logger:      slog.New(slog.DiscardHandler),
	})

	return fixture
}

// expectEngineStart wires one successful engine startup for the seller.
func (f *registryFixture) expectEngineStart(sellerID string) {
	pendingFeed := make(chan repository.PendingNotificationDelta)
	orderFeed := make(chan repository.OrderDelta)

	f.pendingRepo.EXPECT().
		FindUndismissed(mock.Anything, sellerID).
		Return(nil, nil).
		Once()
	f.pendingRepo.EXPECT().
		WatchUndismissed(mock.Anything, sellerID).
		Return(pendingFeed, nil).
		Once()
	f.orderRepo.EXPECT().
		WatchBySeller(mock.Anything, sellerID, mock.AnythingOfType("int")).
		Return(orderFeed, nil).
		Once()
}

func TestNotificationRegistry_EngineFor_ReusesRunningEngine(t *testing.T) {
	fixture := newRegistryFixture(t)
	ctx := context.Background()

	fixture.expectEngineStart("seller-a")

	first, err := fixture.registry.EngineFor(ctx, "seller-a")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "seller-a", first.SellerID())

	// A second session for the same seller shares the engine; the Once
	// expectations above fail the test if startup runs twice.
	second, err := fixture.registry.EngineFor(ctx, "seller-a")
	require.NoError(t, err)
	assert.Same(t, first, second)

	fixture.registry.Shutdown()
}

func TestNotificationRegistry_EngineFor_IsolatesSellers(t *testing.T) {
	fixture := newRegistryFixture(t)
	ctx := context.Background()

	fixture.expectEngineStart("seller-a")
	fixture.expectEngineStart("seller-b")

	engineA, err := fixture.registry.EngineFor(ctx, "seller-a")
	require.NoError(t, err)
	engineB, err := fixture.registry.EngineFor(ctx, "seller-b")
	require.NoError(t, err)

	assert.NotSame(t, engineA, engineB)
	assert.Equal(t, "seller-a", engineA.SellerID())
	assert.Equal(t, "seller-b", engineB.SellerID())

	fixture.registry.Shutdown()
}

func TestNotificationRegistry_EngineFor_StartFailureNotCached(t *testing.T) {
	fixture := newRegistryFixture(t)
	ctx := context.Background()

	fixture.pendingRepo.EXPECT().
		FindUndismissed(mock.Anything, "seller-a").
		Return(nil, nil).
		Once()
	fixture.pendingRepo.EXPECT().
		WatchUndismissed(mock.Anything, "seller-a").
		Return(nil, errors.New("stream setup failed")).
		Once()

	engine, err := fixture.registry.EngineFor(ctx, "seller-a")
	assert.Nil(t, engine)
	require.Error(t, err)

	// The next attempt starts fresh instead of handing back a dead engine.
	fixture.expectEngineStart("seller-a")
	engine, err = fixture.registry.EngineFor(ctx, "seller-a")
	require.NoError(t, err)
	assert.NotNil(t, engine)

	fixture.registry.Shutdown()
}

func TestNotificationRegistry_Release_StopsEngine(t *testing.T) {
	fixture := newRegistryFixture(t)
	ctx := context.Background()

	fixture.expectEngineStart("seller-a")

	engine, err := fixture.registry.EngineFor(ctx, "seller-a")
	require.NoError(t, err)

	fixture.registry.Release("seller-a")

	// The released engine is stopped: its subscriber channels are closed.
	events, cancel := engine.Subscribe()
	defer cancel()
	_, open := <-events
	assert.False(t, open)

	// Releasing an unknown seller is a no-op.
	fixture.registry.Release("seller-unknown")
}

func TestNotificationRegistry_Shutdown_StopsAllEngines(t *testing.T) {
	fixture := newRegistryFixture(t)
	ctx := context.Background()

	fixture.expectEngineStart("seller-a")
	fixture.expectEngineStart("seller-b")

	engineA, err := fixture.registry.EngineFor(ctx, "seller-a")
	require.NoError(t, err)
	engineB, err := fixture.registry.EngineFor(ctx, "seller-b")
	require.NoError(t, err)

	fixture.registry.Shutdown()

	for _, engine := range []usecase.NotificationEngine{engineA, engineB} {
		events, cancel := engine.Subscribe()
		defer cancel()
		_, open := <-events
		assert.False(t, open)
	}
}
