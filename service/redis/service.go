package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/nftex/settlement/base/ctx"
)

const (
	// Forever means the key has no associated expire
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrGapTime is returned when no pool is available
	ErrGapTime = redis.Error("pool unavailable")

	// ErrExpireNotExistOrTimeout is returned when key does not exist or the timeout could not be set
	ErrExpireNotExistOrTimeout = redis.Error("key not exist or timeout not set")
)

// Service abstracts the redis layer
type Service interface {
	// Get returns the value of key, ErrNotFound if the key does not exist
	Get(context ctx.Ctx, key string) (val []byte, err error)

	// Set sets key to hold val with the given expire, use Forever for no expire
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX sets key to hold val only if key does not exist
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys, returns the number of keys removed
	Del(context ctx.Ctx, ks ...string) (int, error)

	// Expire sets a timeout on key
	Expire(context ctx.Ctx, key string, ttl time.Duration) error

	// Incr increments the number stored at key by one
	Incr(context ctx.Ctx, key string) (int64, error)
}
