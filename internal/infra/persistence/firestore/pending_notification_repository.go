package firestore

import (
	"context"
	"log/slog"
	"time"

	"agriatoo/config"
	"agriatoo/internal/domain/entity"
	"agriatoo/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// pendingNotificationRepository implements the
// domain.PendingNotificationRepository interface on Firestore. Records
// are keyed by "{sellerId}_{orderId}", so Set on the keyed document makes
// a concurrent double-create degrade to an overwrite.
type pendingNotificationRepository struct {
	client  *firestore.Client
	backoff backoffConfig
	logger  *slog.Logger
}

// PendingNotificationRepositoryParams holds dependencies injected by Fx
type PendingNotificationRepositoryParams struct {
	fx.In

	Client *firestore.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewPendingNotificationRepository is the constructor for pendingNotificationRepository.
func NewPendingNotificationRepository(params PendingNotificationRepositoryParams) repository.PendingNotificationRepository {
	return &pendingNotificationRepository{
		client:  params.Client,
		backoff: newBackoffConfig(params.Config.Notification),
		logger:  params.Logger,
	}
}

// Save creates or replaces the record under its seller/order key.
func (repo *pendingNotificationRepository) Save(ctx context.Context, record *entity.PendingNotification) error {
	doc := repo.client.Collection(pendingNotificationsCollection).Doc(record.Key())
	if _, err := doc.Set(ctx, record); err != nil {
		return errors.Wrapf(err, "failed to save pending notification %s", record.Key())
	}

	return nil
}

// Get point-reads a record by seller/order key.
func (repo *pendingNotificationRepository) Get(ctx context.Context, sellerID, orderID string) (*entity.PendingNotification, error) {
	key := entity.PendingNotificationKey(sellerID, orderID)
	doc, err := repo.client.Collection(pendingNotificationsCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPendingNotificationNotFound
		}

		return nil, errors.Wrapf(err, "failed to get pending notification %s", key)
	}

	return toPendingNotificationDomain(doc)
}

// MarkDismissed flips the record's dismissed flag and stamps the
// dismissal time. Marking an already-dismissed record is not an error.
func (repo *pendingNotificationRepository) MarkDismissed(ctx context.Context, sellerID, orderID string, at time.Time) error {
	key := entity.PendingNotificationKey(sellerID, orderID)
	doc := repo.client.Collection(pendingNotificationsCollection).Doc(key)

	_, err := doc.Update(ctx, []firestore.Update{
		{Path: "dismissed", Value: true},
		{Path: "dismissedAt", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPendingNotificationNotFound
		}

		return errors.Wrapf(err, "failed to dismiss pending notification %s", key)
	}

	return nil
}

// FindUndismissed retrieves all undismissed records for a seller, newest first.
func (repo *pendingNotificationRepository) FindUndismissed(ctx context.Context, sellerID string) ([]*entity.PendingNotification, error) {
	it := repo.undismissedQuery(sellerID).Documents(ctx)
	defer it.Stop()

	var records []*entity.PendingNotification
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list pending notifications")
		}

		record, err := toPendingNotificationDomain(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// WatchUndismissed opens a live subscription on the seller's undismissed
// records. A record whose dismissed flag flips true leaves the filtered
// set and arrives as a removed delta. The channel closes when ctx is
// cancelled.
func (repo *pendingNotificationRepository) WatchUndismissed(ctx context.Context, sellerID string) (<-chan repository.PendingNotificationDelta, error) {
	deltas := make(chan repository.PendingNotificationDelta)
	go func() {
		defer close(deltas)
		watchChanges(ctx, repo.logger, repo.undismissedQuery(sellerID), repo.backoff, func(change firestore.DocumentChange) {
			record, err := toPendingNotificationDomain(change.Doc)
			if err != nil {
				repo.logger.Error("Skipping undecodable pending notification change",
					slog.String("docID", change.Doc.Ref.ID),
					slog.Any("error", err),
				)

				return
			}

			select {
			case deltas <- repository.PendingNotificationDelta{Kind: toChangeKind(change.Kind), Record: record}:
			case <-ctx.Done():
			}
		})
	}()

	return deltas, nil
}

// undismissedQuery builds the filtered, ordered query shared by the
// startup read and the live subscription.
func (repo *pendingNotificationRepository) undismissedQuery(sellerID string) firestore.Query {
	return repo.client.Collection(pendingNotificationsCollection).
		Where("sellerId", "==", sellerID).
		Where("dismissed", "==", false).
		OrderBy("timestamp", firestore.Desc)
}

// toPendingNotificationDomain maps a pending notification document back
// to a pure domain entity.
func toPendingNotificationDomain(doc *firestore.DocumentSnapshot) (*entity.PendingNotification, error) {
	var record entity.PendingNotification
	if err := doc.DataTo(&record); err != nil {
		return nil, errors.Wrapf(err, "failed to decode pending notification document %s", doc.Ref.ID)
	}

	return &record, nil
}
