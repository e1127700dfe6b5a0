package contracts

import (
	"context"
	"time"
)

// LockerService is a redis-backed advisory lock. TryLock returns the lock value
// that must be presented back to Unlock so only the owner can release it.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
