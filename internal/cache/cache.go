// Package cache keeps GitHub API responses in memory between calls so that
// repeated fetches for the same user do not spend rate limit.
package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultTTL = 5 * time.Minute

type Cache struct {
	cache   *gocache.Cache
	enabled bool
}

// New returns a cache whose entries expire after ttl. A disabled cache
// never stores anything.
func New(enabled bool, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		cache:   gocache.New(ttl, 2*ttl),
		enabled: enabled,
	}
}

// Key joins parts into a case-insensitive cache key.
func Key(parts ...string) string {
	return strings.ToLower(strings.Join(parts, ":"))
}

func (c *Cache) Get(key string) (interface{}, bool) {
	if c == nil || !c.enabled {
		return nil, false
	}
	return c.cache.Get(key)
}

func (c *Cache) SetDefault(key string, value interface{}) {
	if c == nil || !c.enabled {
		return
	}
	c.cache.SetDefault(key, value)
}

func (c *Cache) Delete(key string) {
	if c == nil || !c.enabled {
		return
	}
	c.cache.Delete(key)
}

func (c *Cache) Clear() {
	if c == nil || !c.enabled {
		return
	}
	c.cache.Flush()
}

func (c *Cache) Len() int {
	if c == nil || !c.enabled {
		return 0
	}
	return c.cache.ItemCount()
}
