package docstore

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store with the same snapshot semantics as Mongo.
// Subscribers are notified synchronously after every mutation with the full
// current result set of their query.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]bson.M
	subscribers map[string][]*memorySub
}

type memorySub struct {
	filter    Fields
	fn        SnapshotFunc
	cancelled bool
	// delivery serializes pushes so a slow caller never observes an older
	// snapshot after a newer one.
	delivery sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]bson.M),
		subscribers: make(map[string][]*memorySub),
	}
}

func (m *Memory) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	dm, err := toDoc(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	dm["_id"] = id

	m.mu.Lock()
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]bson.M)
	}
	m.collections[collection][id] = dm
	m.mu.Unlock()

	m.publish(collection)
	return id, nil
}

func (m *Memory) Get(ctx context.Context, collection, id string, out interface{}) error {
	m.mu.RLock()
	dm, ok := m.collections[collection][id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return Decode(dm, out)
}

func (m *Memory) Update(ctx context.Context, collection, id string, patch Fields) error {
	return m.UpdateIf(ctx, collection, id, nil, patch)
}

func (m *Memory) UpdateIf(ctx context.Context, collection, id string, cond, patch Fields) error {
	normPatch, err := toDoc(bson.M(patch))
	if err != nil {
		return err
	}
	normCond, err := toDoc(bson.M(cond))
	if err != nil {
		return err
	}

	m.mu.Lock()
	dm, ok := m.collections[collection][id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	if !matches(dm, normCond) {
		m.mu.Unlock()
		return ErrConflict
	}
	for k, v := range normPatch {
		dm[k] = v
	}
	m.mu.Unlock()

	m.publish(collection)
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	_, ok := m.collections[collection][id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.collections[collection], id)
	m.mu.Unlock()

	m.publish(collection)
	return nil
}

func (m *Memory) Query(ctx context.Context, collection string, filter Fields) (Snapshot, error) {
	normFilter, err := toDoc(bson.M(filter))
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot(collection, normFilter), nil
}

func (m *Memory) Subscribe(ctx context.Context, collection string, filter Fields, fn SnapshotFunc) (Unsubscribe, error) {
	normFilter, err := toDoc(bson.M(filter))
	if err != nil {
		return nil, err
	}
	sub := &memorySub{filter: Fields(normFilter), fn: fn}

	// The initial delivery holds the delivery mutex so a write racing the
	// registration cannot slip a newer snapshot in first and then be
	// overwritten by this stale one.
	sub.delivery.Lock()
	defer sub.delivery.Unlock()

	m.mu.Lock()
	m.subscribers[collection] = append(m.subscribers[collection], sub)
	snap := m.snapshot(collection, normFilter)
	m.mu.Unlock()

	fn(snap)

	return func() {
		m.mu.Lock()
		sub.cancelled = true
		subs := m.subscribers[collection]
		for i, s := range subs {
			if s == sub {
				m.subscribers[collection] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
	}, nil
}

// publish pushes a fresh full snapshot to every live subscriber of the
// collection.
func (m *Memory) publish(collection string) {
	m.mu.RLock()
	var subs []*memorySub
	for _, sub := range m.subscribers[collection] {
		if !sub.cancelled {
			subs = append(subs, sub)
		}
	}
	m.mu.RUnlock()

	for _, sub := range subs {
		sub.delivery.Lock()
		m.mu.RLock()
		snap := m.snapshot(collection, bson.M(sub.filter))
		m.mu.RUnlock()
		sub.fn(snap)
		sub.delivery.Unlock()
	}
}

// snapshot copies the matching documents; callers must hold at least a read
// lock.
func (m *Memory) snapshot(collection string, filter bson.M) Snapshot {
	snap := Snapshot{}
	for _, dm := range m.collections[collection] {
		if matches(dm, filter) {
			cp, err := toDoc(dm)
			if err != nil {
				continue
			}
			snap = append(snap, cp)
		}
	}
	return snap
}

// matches checks field equality against a bson-normalized filter.
func matches(dm bson.M, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(dm[k], want) {
			return false
		}
	}
	return true
}
