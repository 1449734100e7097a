package shared

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// FactorLockKey builds the redis key serializing writes to a single
// correction-factor override. Upserts are lookup-then-write, so two
// concurrent upserts for the same key must not interleave.
func FactorLockKey(eigenaarID int64, conditieType, conditieWaarde string) string {
	return fmt.Sprintf("factoren:%d:%s:%s:lock", eigenaarID, conditieType, conditieWaarde)
}

// SeedLockKey guards the one-time insert of system-default factors.
func SeedLockKey() string {
	return "factoren:standaarden:lock"
}

// KeyLock is a redis-backed lock keyed per critical section. A nil client
// degrades to running the callback unlocked, which keeps single-process
// tools (seeder, tests without redis) working.
type KeyLock struct {
	Client       *redis.Client
	RetryBackoff time.Duration
}

// WithLock runs fn while holding the named lock. The lock is released even
// when fn fails; acquisition gives up when the context is cancelled.
func (l *KeyLock) WithLock(ctx context.Context, key string, ttl time.Duration, fn func(context.Context) error) error {
	if fn == nil {
		return errors.New("shared: lock callback not provided")
	}
	if l == nil || l.Client == nil {
		return fn(ctx)
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	retry := l.RetryBackoff
	if retry <= 0 {
		retry = 50 * time.Millisecond
	}
	token := uuid.NewString()

	for {
		ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return fmt.Errorf("shared: acquire lock %s: %w", key, err)
		}
		if ok {
			defer l.release(key, token)
			return fn(ctx)
		}
		timer := time.NewTimer(retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *KeyLock) release(key, token string) {
	const script = `if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = l.Client.Eval(ctx, script, []string{key}, token).Err()
}
