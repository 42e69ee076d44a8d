package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("intro-to-sui", "content")

	got, ok := c.Get("intro-to-sui")
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if got.(string) != "content" {
		t.Errorf("Expected %q, got %v", "content", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := New(time.Minute)
	if _, ok := c.Get("missing"); ok {
		t.Error("Expected cache miss")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("k", 1)

	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("Expected entry to expire")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry to be evicted, len=%d", c.Len())
	}
}

func TestCacheZeroTTLNeverExpires(t *testing.T) {
	c := New(0)
	c.Set("k", 1)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Error("Expected entry to survive with zero TTL")
	}
}
