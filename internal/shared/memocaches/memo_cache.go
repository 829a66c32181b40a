package memocaches

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
)

// keySeparator cannot appear in view names or query parameters.
const keySeparator = 0x1f

//go:generate mockgen -source=memo_cache.go -destination=./mocks/memo_cache_mock.go -package=mocks
type MemoCache interface {
	Get(key uint64) (any, bool)
	// Set stores value under key. Ristretto admits entries asynchronously,
	// so a Get right after Set may still miss.
	Set(key uint64, value any)
	Wait()
	Close()
}

type Config struct {
	MaxEntries int64
	TTL        time.Duration
}

type memoCache struct {
	cache *ristretto.Cache[uint64, any]
	ttl   time.Duration
}

// New creates a cost-per-entry cache holding at most cfg.MaxEntries values.
func New(cfg Config) (MemoCache, error) {
	if cfg.MaxEntries <= 0 {
		return nil, fmt.Errorf("memo cache: max entries must be positive, got %d", cfg.MaxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, any]{
		NumCounters:        cfg.MaxEntries * 10,
		MaxCost:            cfg.MaxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("memo cache: %w", err)
	}
	return &memoCache{cache: cache, ttl: cfg.TTL}, nil
}

func (c *memoCache) Get(key uint64) (any, bool) {
	return c.cache.Get(key)
}

func (c *memoCache) Set(key uint64, value any) {
	if c.ttl > 0 {
		c.cache.SetWithTTL(key, value, 1, c.ttl)
		return
	}
	c.cache.Set(key, value, 1)
}

func (c *memoCache) Wait() {
	c.cache.Wait()
}

func (c *memoCache) Close() {
	c.cache.Close()
}

// Key hashes parts into one cache key. Parts are separated so ("ab","c")
// and ("a","bc") differ.
func Key(parts ...string) uint64 {
	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.Write([]byte{keySeparator})
		}
		_, _ = d.WriteString(p)
	}
	return d.Sum64()
}
