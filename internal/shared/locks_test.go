package shared

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestLock(t *testing.T) *KeyLock {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &KeyLock{Client: client, RetryBackoff: 5 * time.Millisecond}
}

func TestWithLockSerializesCriticalSection(t *testing.T) {
	lock := newTestLock(t)
	key := FactorLockKey(1, "bereikbaarheid", "beperkt")

	var mu sync.Mutex
	var active, maxActive int

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := lock.WithLock(context.Background(), key, time.Second, func(context.Context) error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxActive)
}

func TestWithLockReleasesOnError(t *testing.T) {
	lock := newTestLock(t)
	key := SeedLockKey()

	errBoom := context.DeadlineExceeded
	err := lock.WithLock(context.Background(), key, time.Second, func(context.Context) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	// Lock must be free again for the next caller.
	err = lock.WithLock(context.Background(), key, time.Second, func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
}

func TestWithLockWithoutClientRunsUnlocked(t *testing.T) {
	var lock *KeyLock
	ran := false
	err := lock.WithLock(context.Background(), "any", time.Second, func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran)
}
