// Package docstore is the boundary to the document database. Services talk
// to the Store interface only; Mongo is the hosted implementation and Memory
// backs tests and local runs.
package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound - no document with the given id in the collection.
	ErrNotFound = errors.New("document not found")
	// ErrConflict - the document exists but the UpdateIf condition did not
	// match its current state.
	ErrConflict = errors.New("document state conflict")
)

// Fields is an equality filter or a merge patch, keyed by document field.
type Fields map[string]interface{}

// Snapshot is the entire current result set of a query. Subscriptions always
// push the full set, never a diff; the last snapshot wins.
type Snapshot []bson.M

// SnapshotFunc receives every snapshot pushed by a subscription.
type SnapshotFunc func(Snapshot)

// Unsubscribe tears down a live subscription. It is the only cancellation
// primitive a subscription has.
type Unsubscribe func()

// Store is the collection-scoped surface of the remote document store.
// Update has merge-patch semantics: fields absent from the patch are left
// untouched. UpdateIf applies the patch only while cond still matches the
// document and reports ErrConflict otherwise.
type Store interface {
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	Get(ctx context.Context, collection, id string, out interface{}) error
	Update(ctx context.Context, collection, id string, patch Fields) error
	UpdateIf(ctx context.Context, collection, id string, cond, patch Fields) error
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection string, filter Fields) (Snapshot, error)
	Subscribe(ctx context.Context, collection string, filter Fields, fn SnapshotFunc) (Unsubscribe, error)
}

// Decode unmarshals one snapshot document into a typed record.
func Decode(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
