// Package mirror keeps an in-process copy of a remote collection so readers
// never pay a network round trip. A mirror is fed exclusively by live
// subscription snapshots; writers go to the remote store and the mirror
// catches up when the next snapshot lands.
package mirror

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Mirror holds the last snapshot of one collection for one owner. Selected
// mirrors persist their records through a SnapshotStore for instant first
// paint on the next session; persisted data is never authoritative and is
// replaced wholesale by the first live snapshot.
type Mirror[T any] struct {
	key   string
	store SnapshotStore

	mu      sync.RWMutex
	records []T
	live    bool
}

// New creates an empty mirror. store may be nil for a purely in-memory one.
func New[T any](key string, store SnapshotStore) *Mirror[T] {
	return &Mirror[T]{key: key, store: store}
}

// Restore loads the persisted snapshot from the previous session, if any.
// A missing or unreadable blob is not an error; the mirror just starts empty.
func (m *Mirror[T]) Restore() {
	if m.store == nil {
		return
	}
	data, err := m.store.Load(m.key)
	if err != nil || len(data) == 0 {
		return
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logrus.Warnf("mirror %s: dropping unreadable persisted snapshot: %v", m.key, err)
		return
	}

	m.mu.Lock()
	if !m.live {
		m.records = records
	}
	m.mu.Unlock()
}

// Replace swaps in a fresh snapshot in one atomic update and persists it.
// The first Replace supersedes whatever Restore loaded.
func (m *Mirror[T]) Replace(records []T) {
	m.mu.Lock()
	m.records = records
	m.live = true
	m.mu.Unlock()

	if m.store == nil {
		return
	}
	data, err := json.Marshal(records)
	if err != nil {
		logrus.Warnf("mirror %s: unable to encode snapshot: %v", m.key, err)
		return
	}
	if err := m.store.Save(m.key, data); err != nil {
		logrus.Warnf("mirror %s: unable to persist snapshot: %v", m.key, err)
	}
}

// Records returns a copy of the current snapshot.
func (m *Mirror[T]) Records() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.records))
	copy(out, m.records)
	return out
}

// Len is the size of the current snapshot.
func (m *Mirror[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Live reports whether at least one subscription snapshot has arrived.
func (m *Mirror[T]) Live() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.live
}

// Teardown drops the persisted snapshot; called when the owning session ends.
func (m *Mirror[T]) Teardown() {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(m.key); err != nil {
		logrus.Warnf("mirror %s: unable to drop persisted snapshot: %v", m.key, err)
	}
}
