// Package cache provides the pluggable response cache for analysis results.
// Identical requests produce identical results, so responses can be reused
// for a short window without consulting the engine.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/loganko83/realcare/internal/config"
)

// Cache stores serialized responses keyed by request digest. A miss is not
// an error; backends degrade to misses when unavailable.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Close() error
}

// New builds the cache named by the config driver.
func New(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Driver {
	case config.CacheOff, "":
		return Noop{}, nil
	case config.CacheMemory:
		return newMemory(cfg.MaxEntries, cfg.TTLSecs), nil
	case config.CacheRedis:
		return newRedis(cfg.RedisURL, cfg.TTLSecs)
	default:
		return nil, eris.Errorf("cache: unknown driver %q", cfg.Driver)
	}
}

// Key digests a request payload into a stable cache key. Payload structs
// marshal their fields in declaration order, so equal requests always map
// to the same key.
func Key(prefix string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", eris.Wrap(err, "cache: marshal key payload")
	}
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:]), nil
}

// Noop is the disabled cache: every lookup misses.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte)        {}
func (Noop) Close() error                               { return nil }
