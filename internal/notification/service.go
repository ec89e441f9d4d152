// Package notification owns the per-user notification feed: the single write
// path every producer goes through, read-state transitions, and the live
// subscription that keeps a user's mirror current.
package notification

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/mirror"
)

// Service - defines the notification feed service
type Service struct {
	store     docstore.Store
	snapshots mirror.SnapshotStore
	log       *logrus.Logger

	mu    sync.Mutex
	feeds map[string]*Feed
}

// NewService - creates a new notification service
func NewService(store docstore.Store, snapshots mirror.SnapshotStore, log *logrus.Logger) *Service {
	return &Service{
		store:     store,
		snapshots: snapshots,
		log:       log,
		feeds:     make(map[string]*Feed),
	}
}

// Add is the single write path for new notifications. It stamps createdAt
// and the unread flag and creates the record. There is no deduplication:
// calling it twice creates two records. A store failure propagates to the
// caller so the producing transition can report it.
func (s *Service) Add(ctx context.Context, n domain.Notification) (string, error) {
	n.ID = ""
	n.IsRead = false
	n.ReadAt = nil
	n.CreatedAt = time.Now()

	id, err := s.store.Create(ctx, domain.CollectionNotifications, n)
	if err != nil {
		return "", errors.Wrap(err, "unable to create notification")
	}
	return id, nil
}

// MarkAsRead sets the read flag; the transition is monotonic and the call is
// idempotent - a second write still succeeds and changes nothing observable.
// Failures are logged and swallowed so read-state never blocks the reader.
func (s *Service) MarkAsRead(ctx context.Context, notificationID string) {
	now := time.Now()
	err := s.store.Update(ctx, domain.CollectionNotifications, notificationID, docstore.Fields{
		"isRead": true,
		"readAt": now,
	})
	if err != nil {
		s.log.Errorf("unable to mark notification %s as read: %v", notificationID, err)
	}
}

// MarkAllAsRead fans out one update per currently-cached unread notification,
// issued concurrently. A partial failure leaves those notifications unread;
// the next call retries only the still-unread ones.
func (s *Service) MarkAllAsRead(ctx context.Context, userID string) {
	feed, err := s.Feed(ctx, userID)
	if err != nil {
		s.log.Errorf("unable to load feed for %s: %v", userID, err)
		return
	}

	var wg sync.WaitGroup
	for _, n := range feed.Notifications() {
		if n.IsRead {
			continue
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			s.MarkAsRead(ctx, id)
		}(n.ID)
	}
	wg.Wait()
}

// List is the one-shot read of a user's notifications, newest first. The
// remote query is unordered; sorting happens here.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	snap, err := s.store.Query(ctx, domain.CollectionNotifications, docstore.Fields{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "unable to query notifications")
	}
	return s.decodeSorted(snap), nil
}

// Feed returns the live feed for a user, subscribing on first use. The
// initial snapshot is delivered before Feed returns. One feed per user at a
// time; a caller switching users must Close the previous feed first.
func (s *Service) Feed(ctx context.Context, userID string) (*Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if feed, ok := s.feeds[userID]; ok {
		return feed, nil
	}

	feed := &Feed{
		userID: userID,
		svc:    s,
		mirror: mirror.New[domain.Notification]("notifications:"+userID, s.snapshots),
	}
	feed.mirror.Restore()

	unsub, err := s.store.Subscribe(ctx, domain.CollectionNotifications, docstore.Fields{"userId": userID}, feed.onSnapshot)
	if err != nil {
		return nil, errors.Wrap(err, "unable to subscribe to notifications")
	}
	feed.unsub = unsub

	s.feeds[userID] = feed
	return feed, nil
}

// Close tears down every live feed.
func (s *Service) Close() {
	s.mu.Lock()
	feeds := s.feeds
	s.feeds = make(map[string]*Feed)
	s.mu.Unlock()

	for _, feed := range feeds {
		feed.close()
	}
}

func (s *Service) decodeSorted(snap docstore.Snapshot) []domain.Notification {
	records := make([]domain.Notification, 0, len(snap))
	for _, doc := range snap {
		var n domain.Notification
		if err := docstore.Decode(doc, &n); err != nil {
			s.log.Errorf("unable to decode notification: %v", err)
			continue
		}
		records = append(records, n)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records
}
