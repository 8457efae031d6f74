package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const blacklistPrefix = "blacklist:"

type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rdb: rdb}
}

// Connect разбирает url, открывает клиент и проверяет, что сервер отвечает
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return rdb, nil
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.rdb.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, errors.Wrap(err, "blacklist lookup")
	}
	return n > 0, nil
}

func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// уже истек, отзывать нечего
		return nil
	}
	return errors.Wrap(b.rdb.Set(ctx, blacklistPrefix+token, 1, ttl).Err(), "blacklist token")
}

func (b *TokenBlacklist) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}
