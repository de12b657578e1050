package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"loan-engine/pkg/id"
)

// ErrNotAcquired means the lock stayed held by someone else for the whole
// wait window.
var ErrNotAcquired = errors.New("lock not acquired")

const acquireRetryInterval = 50 * time.Millisecond

// LockManager hands out named lease-based locks backed by redis SET NX.
// The lease expires on its own if the holder crashes, so a stuck holder can
// never starve other requests past leaseTimeout.
type LockManager struct {
	rdb *redis.Client
}

func NewLockManager(rdb *redis.Client) *LockManager { return &LockManager{rdb: rdb} }

// Lock is a held lease. The token fences release so one holder can never
// free a lease that has expired and been re-acquired by someone else.
type Lock struct {
	key   string
	token string
}

func (l *Lock) Key() string { return l.key }

// Acquire blocks until the named lock is held, the wait window elapses
// (ErrNotAcquired), or ctx is cancelled. The lease auto-expires after lease.
func (m *LockManager) Acquire(ctx context.Context, key string, wait, lease time.Duration) (*Lock, error) {
	token := id.NewID32()

	deadline := time.NewTimer(wait)
	defer deadline.Stop()
	retry := time.NewTicker(acquireRetryInterval)
	defer retry.Stop()

	for {
		ok, err := m.rdb.SetNX(ctx, key, token, lease).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return &Lock{key: key, token: token}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, ErrNotAcquired
		case <-retry.C:
		}
	}
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Release frees the lock if we still hold it. Idempotent; a no-op when the
// lease already expired or belongs to another holder.
func (m *LockManager) Release(ctx context.Context, l *Lock) error {
	if l == nil {
		return nil
	}
	return releaseScript.Run(ctx, m.rdb, []string{l.key}, l.token).Err()
}
