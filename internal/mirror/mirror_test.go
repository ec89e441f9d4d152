package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// fakeSnapshotStore keeps blobs in a map; Load of a missing key behaves like
// the redis store and returns nil, nil.
type fakeSnapshotStore struct {
	blobs map[string][]byte
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{blobs: make(map[string][]byte)}
}

func (s *fakeSnapshotStore) Save(key string, data []byte) error {
	s.blobs[key] = data
	return nil
}

func (s *fakeSnapshotStore) Load(key string) ([]byte, error) {
	return s.blobs[key], nil
}

func (s *fakeSnapshotStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

func TestReplaceAndRecords(t *testing.T) {
	m := New[record]("tickets", nil)
	assert.False(t, m.Live())
	assert.Zero(t, m.Len())

	m.Replace([]record{{ID: "1"}, {ID: "2"}})
	assert.True(t, m.Live())
	assert.Equal(t, 2, m.Len())

	m.Replace([]record{{ID: "3"}})
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "3", m.Records()[0].ID)
}

func TestRecordsReturnsCopy(t *testing.T) {
	m := New[record]("tickets", nil)
	m.Replace([]record{{ID: "1", Name: "a"}})

	got := m.Records()
	got[0].Name = "mutated"

	assert.Equal(t, "a", m.Records()[0].Name)
}

func TestReplacePersistsAndRestoreLoads(t *testing.T) {
	store := newFakeSnapshotStore()

	m := New[record]("tickets", store)
	m.Replace([]record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}})

	// A fresh mirror for the same key starts from the persisted snapshot.
	next := New[record]("tickets", store)
	next.Restore()
	require.Equal(t, 2, next.Len())
	assert.Equal(t, "a", next.Records()[0].Name)
	assert.False(t, next.Live())
}

func TestFirstReplaceSupersedesRestore(t *testing.T) {
	store := newFakeSnapshotStore()

	seed := New[record]("tickets", store)
	seed.Replace([]record{{ID: "stale"}})

	m := New[record]("tickets", store)
	m.Replace([]record{{ID: "live-1"}, {ID: "live-2"}})

	// A Restore landing after the first live snapshot must not clobber it.
	m.Restore()
	require.Equal(t, 2, m.Len())
	assert.Equal(t, "live-1", m.Records()[0].ID)
}

func TestRestoreMissingOrGarbageBlob(t *testing.T) {
	store := newFakeSnapshotStore()

	m := New[record]("tickets", store)
	m.Restore()
	assert.Zero(t, m.Len())

	store.blobs["tickets"] = []byte("{not json")
	m.Restore()
	assert.Zero(t, m.Len())
}

func TestTeardownDropsPersistedSnapshot(t *testing.T) {
	store := newFakeSnapshotStore()

	m := New[record]("tickets", store)
	m.Replace([]record{{ID: "1"}})
	require.Contains(t, store.blobs, "tickets")

	m.Teardown()
	assert.NotContains(t, store.blobs, "tickets")
}
