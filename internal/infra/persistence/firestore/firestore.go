// Package firestore contains the concrete implementation of the
// persistence layer on the Firestore document store.
package firestore

import (
	"context"
	"log/slog"
	"time"

	"agriatoo/config"
	"agriatoo/internal/domain/repository"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collection names shared with the buyer-facing marketplace backend.
const (
	usersCollection                = "users"
	ordersCollection               = "orders"
	pendingNotificationsCollection = "pendingNotifications"
	productsCollection             = "products"
)

const (
	defaultWatchBackoffInitial = time.Second
	defaultWatchBackoffMax     = 30 * time.Second
)

// ClientParams holds dependencies for the Firestore client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewClient creates the Firestore client from the Firebase app and closes
// it on shutdown.
func NewClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

// backoffConfig bounds the reconnect delay for snapshot streams.
type backoffConfig struct {
	initial time.Duration
	max     time.Duration
}

// newBackoffConfig reads the watch backoff bounds from configuration,
// falling back to defaults when unset.
func newBackoffConfig(cfg *config.NotificationConfig) backoffConfig {
	bc := backoffConfig{
		initial: defaultWatchBackoffInitial,
		max:     defaultWatchBackoffMax,
	}
	if cfg != nil {
		if cfg.WatchBackoffInitial > 0 {
			bc.initial = cfg.WatchBackoffInitial
		}
		if cfg.WatchBackoffMax > 0 {
			bc.max = cfg.WatchBackoffMax
		}
	}

	return bc
}

// toChangeKind maps a Firestore document change kind onto the domain's
// delta classification.
func toChangeKind(kind firestore.DocumentChangeKind) repository.ChangeKind {
	switch kind {
	case firestore.DocumentModified:
		return repository.ChangeModified
	case firestore.DocumentRemoved:
		return repository.ChangeRemoved
	default:
		return repository.ChangeAdded
	}
}

// watchChanges runs a snapshot listener on the query until ctx is
// cancelled, invoking handle for every document change. Stream errors
// trigger a reconnect with exponential backoff; each reconnect delivers
// the full result set again as added changes, which consumers must
// tolerate (and do, since delta application is idempotent).
func watchChanges(ctx context.Context, logger *slog.Logger, query firestore.Query, cfg backoffConfig, handle func(firestore.DocumentChange)) {
	delay := cfg.initial

	for {
		it := query.Snapshots(ctx)
		for {
			snap, err := it.Next()
			if err != nil {
				it.Stop()
				if ctx.Err() != nil {
					return
				}

				logger.Warn("Snapshot stream failed, reconnecting",
					slog.Any("error", err),
					slog.Duration("backoff", delay),
				)

				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
				delay = min(delay*2, cfg.max)

				break
			}

			// A healthy snapshot resets the backoff.
			delay = cfg.initial
			for _, change := range snap.Changes {
				handle(change)
			}
		}
	}
}
