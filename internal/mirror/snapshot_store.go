package mirror

import (
	"github.com/go-redis/redis/v7"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/cache"
)

// SnapshotStore is the durable key-value home of persisted mirror snapshots,
// one blob per mirror key.
type SnapshotStore interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
	Delete(key string) error
}

// CacheSnapshotStore persists snapshots in redis with a week of expiry so
// stale sessions clean themselves up.
type CacheSnapshotStore struct {
	cache *cache.Cache
}

func NewCacheSnapshotStore(c *cache.Cache) *CacheSnapshotStore {
	return &CacheSnapshotStore{cache: c}
}

func (s *CacheSnapshotStore) Save(key string, data []byte) error {
	if err := s.cache.SetBytes("mirror:"+key, data); err != nil {
		return err
	}
	s.cache.ExpireKey("mirror:"+key, cache.Expire1WK)
	return nil
}

func (s *CacheSnapshotStore) Load(key string) ([]byte, error) {
	data, err := s.cache.GetBytes("mirror:" + key)
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (s *CacheSnapshotStore) Delete(key string) error {
	return s.cache.DeleteValue("mirror:" + key)
}
