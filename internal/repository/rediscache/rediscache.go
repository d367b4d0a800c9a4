// FilePath: server/stockkarte/internal/repository/rediscache/rediscache.go
package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/config"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/database"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	nuts "github.com/vaudience/go-nuts"
)

const keyPrefix = "stockkarte:"

// InspectionCache is a read-through cache in front of an InspectionRepository.
// Get and Latest are served from redis when possible. Every redis call runs
// through a circuit breaker, and any cache failure falls back to the store.
type InspectionCache struct {
	repository.InspectionRepository
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
}

// NewClient creates the redis client described by cfg.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// New wraps store with a cache backed by client.
func New(store repository.InspectionRepository, client *redis.Client, ttl time.Duration) *InspectionCache {
	return &InspectionCache{
		InspectionRepository: store,
		client:               client,
		ttl:                  ttl,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:     "redis-cache",
			Interval: time.Minute,
			Timeout:  30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				nuts.L.Warnf("[InspectionCache] Circuit %s changed from %s to %s", name, from, to)
			},
		}),
	}
}

// State reports the circuit breaker state.
func (c *InspectionCache) State() gobreaker.State {
	return c.breaker.State()
}

func entryKey(id string) string      { return keyPrefix + "inspection:" + id }
func latestKey(hiveID string) string { return keyPrefix + "latest:" + hiveID }

func (c *InspectionCache) Get(ctx context.Context, id string) (*models.InspectionEntry, error) {
	return c.readThrough(ctx, entryKey(id), func() (*models.InspectionEntry, error) {
		return c.InspectionRepository.Get(ctx, id)
	})
}

func (c *InspectionCache) Latest(ctx context.Context, hiveID string) (*models.InspectionEntry, error) {
	return c.readThrough(ctx, latestKey(hiveID), func() (*models.InspectionEntry, error) {
		return c.InspectionRepository.Latest(ctx, hiveID)
	})
}

func (c *InspectionCache) Create(ctx context.Context, entry *models.InspectionEntry) error {
	if err := c.InspectionRepository.Create(ctx, entry); err != nil {
		return err
	}
	c.invalidate(ctx, latestKey(entry.HiveID))
	return nil
}

func (c *InspectionCache) Delete(ctx context.Context, id string) error {
	entry, err := c.InspectionRepository.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := c.InspectionRepository.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, entryKey(id), latestKey(entry.HiveID))
	return nil
}

func (c *InspectionCache) DeleteByHive(ctx context.Context, hiveID string, tx database.Transaction) (int64, error) {
	n, err := c.InspectionRepository.DeleteByHive(ctx, hiveID, tx)
	if err != nil {
		return n, err
	}
	// entry ids of the hive are unknown here
	c.invalidatePrefix(ctx, keyPrefix)
	return n, nil
}

func (c *InspectionCache) DeleteBefore(ctx context.Context, before models.Date) (int64, error) {
	n, err := c.InspectionRepository.DeleteBefore(ctx, before)
	if err != nil {
		return n, err
	}
	c.invalidatePrefix(ctx, keyPrefix)
	return n, nil
}

func (c *InspectionCache) readThrough(ctx context.Context, key string, load func() (*models.InspectionEntry, error)) (*models.InspectionEntry, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		data, err := c.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return []byte(nil), nil
		}
		return data, err
	})
	if err != nil {
		nuts.L.Warnf("[InspectionCache] Read of %s failed, using store: %v", key, err)
		return load()
	}

	if data := res.([]byte); data != nil {
		entry := &models.InspectionEntry{}
		if err := json.Unmarshal(data, entry); err == nil {
			return entry, nil
		}
		nuts.L.Warnf("[InspectionCache] Dropping undecodable entry %s", key)
	}

	entry, err := load()
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, entry)
	return entry, nil
}

func (c *InspectionCache) store(ctx context.Context, key string, entry *models.InspectionEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		nuts.L.Errorf("[InspectionCache] Failed to encode %s: %v", key, err)
		return
	}
	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, key, data, c.ttl).Err()
	})
	if err != nil {
		nuts.L.Warnf("[InspectionCache] Write of %s failed: %v", key, err)
	}
}

func (c *InspectionCache) invalidate(ctx context.Context, keys ...string) {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.Del(ctx, keys...).Err()
	})
	if err != nil {
		nuts.L.Warnf("[InspectionCache] Invalidation of %v failed: %v", keys, err)
	}
}

func (c *InspectionCache) invalidatePrefix(ctx context.Context, prefix string) {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, nil
		}
		return nil, c.client.Del(ctx, keys...).Err()
	})
	if err != nil {
		nuts.L.Warnf("[InspectionCache] Invalidation of %s* failed: %v", prefix, err)
	}
}
