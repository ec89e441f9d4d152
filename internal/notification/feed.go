package notification

import (
	"sync"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/mirror"
)

// Feed is one user's live notification list. Every subscription push replaces
// the cached list in one atomic update and recomputes the unread count in the
// same pass.
type Feed struct {
	userID string
	svc    *Service
	mirror *mirror.Mirror[domain.Notification]
	unsub  docstore.Unsubscribe

	mu     sync.RWMutex
	unread int
}

// Notifications returns the cached list, newest first, without a network
// round trip.
func (f *Feed) Notifications() []domain.Notification {
	return f.mirror.Records()
}

// UnreadCount is the count of unread notifications as of the last snapshot.
func (f *Feed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.unread
}

// Close cancels the live subscription and drops the persisted snapshot.
func (f *Feed) Close() {
	f.svc.mu.Lock()
	delete(f.svc.feeds, f.userID)
	f.svc.mu.Unlock()
	f.close()
}

func (f *Feed) close() {
	if f.unsub != nil {
		f.unsub()
	}
	f.mirror.Teardown()
}

func (f *Feed) onSnapshot(snap docstore.Snapshot) {
	records := f.svc.decodeSorted(snap)

	unread := 0
	for _, n := range records {
		if !n.IsRead {
			unread++
		}
	}

	f.mirror.Replace(records)
	f.mu.Lock()
	f.unread = unread
	f.mu.Unlock()
}
