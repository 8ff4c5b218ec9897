package visa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps cache entries as JSON envelopes in Redis. The expiry is
// carried inside the value so the gateway sees the same freshness contract
// as with Postgres; the native key TTL is only a backstop that garbage
// collects entries nobody reads again.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func cacheKey(passportCode, destinationCode string) string {
	return fmt.Sprintf("visa:%s:%s", passportCode, destinationCode)
}

func (s *RedisStore) Get(ctx context.Context, passportCode, destinationCode string) (*CacheEntry, error) {
	raw, err := s.rdb.Get(ctx, cacheKey(passportCode, destinationCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entry CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, err
	}
	entry.PassportCode = passportCode
	entry.DestinationCode = destinationCode
	return &entry, nil
}

func (s *RedisStore) Upsert(ctx context.Context, passportCode, destinationCode string, payload json.RawMessage, cachedAt time.Time) error {
	entry := CacheEntry{
		PassportCode:    passportCode,
		DestinationCode: destinationCode,
		Payload:         payload,
		CachedAt:        cachedAt,
		ExpiresAt:       cachedAt.Add(CacheTTL),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cacheKey(passportCode, destinationCode), raw, CacheTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, passportCode, destinationCode string) error {
	return s.rdb.Del(ctx, cacheKey(passportCode, destinationCode)).Err()
}
