// Package cache memoizes simulation results in Redis, keyed by a hash of the
// scenario name and instrument vector that produced them, so a caller can
// answer repeated identical scenario requests without re-running the solver.
// The HTTP server does not use it.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultTTL is how long a cached result stays valid; scenarios are
// deterministic given the same baseline, so this only bounds staleness after
// a baseline reload.
const DefaultTTL = 15 * time.Minute

// ResultCache wraps a redis client scoped to simulate results.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New builds a ResultCache against the given redis address.
func New(addr string) *ResultCache {
	return &ResultCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    DefaultTTL,
	}
}

// Key derives a stable cache key from a scenario name and instrument vector:
// the name and every key/value pair sorted by key, hashed with sha256.
func Key(name string, instruments map[string]float64) string {
	keys := make([]string, 0, len(instruments))
	for k := range instruments {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	fmt.Fprintf(h, "name=%s;", name)
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%.10f;", k, instruments[k])
	}
	return "econ:simulate:" + hex.EncodeToString(h.Sum(nil))
}

// Get looks up a cached JSON payload; ok is false on a miss or Redis error.
func (c *ResultCache) Get(ctx context.Context, key string, dest interface{}) (ok bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// Set stores value as JSON under key with the cache's TTL. Errors are
// swallowed: a cache-write failure should never fail the request it is
// memoizing.
func (c *ResultCache) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Close releases the underlying redis connection pool.
func (c *ResultCache) Close() error {
	return c.client.Close()
}
