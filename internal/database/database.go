package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect attempts to connect to MongoDB with retries and returns the
// database handle.
func Connect(ctx context.Context, config *Config, maxAttempts int, retryInterval time.Duration) (*mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(config.Host).
		SetRetryReads(true).
		SetRetryWrites(true)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err := mongo.Connect(ctx, clientOptions)
		if err == nil {
			if err = client.Ping(ctx, nil); err == nil {
				logrus.Info("Mongo connection success!!!")
				return client.Database(config.DBName), nil
			}
		}

		logrus.Warnf("Attempt %d to connect to MongoDB failed: %v", attempt, err)
		time.Sleep(retryInterval)
	}

	return nil, errors.Errorf("failed to connect to MongoDB after %d attempts", maxAttempts)
}

// Close disconnects the underlying client.
func Close(db *mongo.Database) error {
	return db.Client().Disconnect(context.TODO())
}
