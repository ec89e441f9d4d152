package docstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/util"
)

// Mongo implements Store on a mongo database. Documents carry string hex
// ids in _id so both implementations hand out the same identity shape.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	dm, err := toDoc(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	dm["_id"] = id

	_, err = m.db.Collection(collection).InsertOne(ctx, dm)
	if err != nil {
		return "", errors.Wrapf(err, "unable to insert into %s", collection)
	}
	return id, nil
}

func (m *Mongo) Get(ctx context.Context, collection, id string, out interface{}) error {
	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Update(ctx context.Context, collection, id string, patch Fields) error {
	res, err := m.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return errors.Wrapf(err, "unable to update %s/%s", collection, id)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) UpdateIf(ctx context.Context, collection, id string, cond, patch Fields) error {
	filter := bson.M{"_id": id}
	for k, v := range cond {
		filter[k] = v
	}

	res, err := m.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return errors.Wrapf(err, "unable to update %s/%s", collection, id)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Nothing matched: tell a missing document apart from a lost condition.
	n, err := m.db.Collection(collection).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "unable to check %s/%s", collection, id)
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrConflict
}

func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "unable to delete %s/%s", collection, id)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Query(ctx context.Context, collection string, filter Fields) (Snapshot, error) {
	// Unordered on purpose; callers sort client side so no composite index
	// is required.
	cur, err := m.db.Collection(collection).Find(ctx, bson.M(filter))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to query %s", collection)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Subscribe opens a change stream on the collection and re-runs the query on
// every event, pushing the complete result set to fn. The initial snapshot is
// delivered before Subscribe returns. A failed re-query is logged and the
// stream keeps running.
func (m *Mongo) Subscribe(ctx context.Context, collection string, filter Fields, fn SnapshotFunc) (Unsubscribe, error) {
	subCtx, cancel := context.WithCancel(ctx)

	snap, err := m.Query(subCtx, collection, filter)
	if err != nil {
		cancel()
		return nil, err
	}
	fn(snap)

	stream, err := m.db.Collection(collection).Watch(subCtx, mongo.Pipeline{})
	if err != nil {
		cancel()
		return nil, errors.Wrapf(err, "unable to watch %s", collection)
	}

	go func() {
		// fn is caller code; a panic in it must not take the process down.
		defer util.Recover()
		defer stream.Close(context.Background())
		for stream.Next(subCtx) {
			snap, err := m.Query(subCtx, collection, filter)
			if err != nil {
				logrus.Errorf("subscription query on %s failed: %v", collection, err)
				continue
			}
			fn(snap)
		}
	}()

	return func() { cancel() }, nil
}

func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var dm bson.M
	if err := bson.Unmarshal(raw, &dm); err != nil {
		return nil, err
	}
	return dm, nil
}
