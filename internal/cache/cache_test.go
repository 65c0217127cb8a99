package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheStoresWhenEnabled(t *testing.T) {
	c := New(true, time.Minute)
	c.SetDefault(Key("user", "OctoCat"), 42)

	v, ok := c.Get("user:octocat")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, c.Len())

	c.Delete(Key("user", "octocat"))
	_, ok = c.Get("user:octocat")
	assert.False(t, ok)
}

func TestCacheDisabled(t *testing.T) {
	c := New(false, 0)
	c.SetDefault("k", "v")
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	var nilCache *Cache
	nilCache.SetDefault("k", "v")
	_, ok = nilCache.Get("k")
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	c := New(true, time.Minute)
	c.SetDefault("a", 1)
	c.SetDefault("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}
