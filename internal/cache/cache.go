// Package cache wraps an LRU with per-entry expiry for generated module
// content. Bounded size plus TTL replaces the unbounded map the content
// path would otherwise accumulate.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const defaultSize = 512

type entry struct {
	value    any
	storedAt time.Time
}

type Cache struct {
	lru *lru.Cache
	ttl time.Duration
}

func New(ttl time.Duration) *Cache {
	c, _ := lru.New(defaultSize)
	return &Cache{lru: c, ttl: ttl}
}

func (c *Cache) Get(key string) (any, bool) {
	raw, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	e := raw.(entry)
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		c.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.lru.Add(key, entry{value: value, storedAt: time.Now()})
}

func (c *Cache) Remove(key string) {
	c.lru.Remove(key)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
