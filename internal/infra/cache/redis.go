package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix        = "booked_slots:"
	versionKeyPrefix = "booked_slots_version:"

	// ключ поколения живёт дольше окна бронирования
	versionTTL = 30 * 24 * time.Hour
)

var errStaleVersion = errors.New("cache: stale version")

// Redis кеш занятых слотов в Redis. Ошибки Redis не пробрасываются:
// Get считает их промахом, Set и Invalidate только логируют.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, log Logger) *Redis {
	return &Redis{client: client, ttl: ttl, log: log}
}

func key(date string) string {
	return keyPrefix + date
}

func versionKey(date string) string {
	return versionKeyPrefix + date
}

func (c *Redis) Get(ctx context.Context, date string) ([]string, bool) {
	val, err := c.client.Get(ctx, key(date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache: redis get %s failed: %v", date, err)
		}
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(val, &ids); err != nil {
		c.log.Warn("cache: corrupt entry for %s: %v", date, err)
		return nil, false
	}
	return ids, true
}

// Version текущее поколение даты, отсутствующий ключ означает 0
func (c *Redis) Version(ctx context.Context, date string) int64 {
	v, err := c.client.Get(ctx, versionKey(date)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache: redis get version %s failed: %v", date, err)
		}
		return 0
	}
	return v
}

// Set пишет слоты под WATCH ключа поколения; если поколение отличается от version, запись пропускается
func (c *Redis) Set(ctx context.Context, date string, version int64, slotIDs []string) {
	if slotIDs == nil {
		slotIDs = []string{}
	}
	data, err := json.Marshal(slotIDs)
	if err != nil {
		c.log.Warn("cache: marshal %s failed: %v", date, err)
		return
	}

	vKey := versionKey(date)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(date), data, c.ttl)
			return nil
		})
		return err
	}, vKey)

	switch {
	case err == nil, errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
	default:
		c.log.Warn("cache: redis set %s failed: %v", date, err)
	}
}

// Invalidate увеличивает поколение даты и удаляет запись
func (c *Redis) Invalidate(ctx context.Context, date string) {
	vKey := versionKey(date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vKey)
		pipe.Expire(ctx, vKey, versionTTL)
		pipe.Del(ctx, key(date))
		return nil
	})
	if err != nil {
		c.log.Warn("cache: redis invalidate %s failed: %v", date, err)
	}
}

// Ping проверяет соединение с Redis
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
