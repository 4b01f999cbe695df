package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New()

	c.Set("key", "value", time.Minute)

	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheMiss(t *testing.T) {
	c := New()

	got, found := c.Get("missing")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestCacheExpiry(t *testing.T) {
	c := New()

	c.Set("key", "value", -time.Second)

	got, found := c.Get("key")
	assert.False(t, found)
	assert.Nil(t, got)
	// Expired entries are evicted on read.
	assert.Equal(t, 0, c.Len())
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				c.Set("shared", j, time.Minute)
				c.Get("shared")
			}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}

	_, found := c.Get("shared")
	assert.True(t, found)
}
