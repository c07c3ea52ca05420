package infra

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("a", "value-a", time.Minute)

	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != "value-a" {
		t.Errorf("got %v, want value-a", got)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("a", "value-a", 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Size() != 0 {
		t.Errorf("size = %d, want 0 after expired read", c.Size())
	}
}

func TestCacheUpdateExisting(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("a", "old", time.Minute)
	c.Set("a", "new", time.Minute)

	got, _ := c.Get("a")
	if got != "new" {
		t.Errorf("got %v, want new", got)
	}
	if c.Size() != 1 {
		t.Errorf("size = %d, want 1", c.Size())
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := NewCache(3)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("c", 3, time.Minute)

	// Touch "a" so "b" becomes least recently used.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit for a")
	}

	c.Set("d", 4, time.Minute)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted as least recently used")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
	if got := c.Evictions(); got != 1 {
		t.Errorf("evictions = %d, want 1", got)
	}
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Delete("a")

	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry should miss")
	}
	c.Delete("a") // deleting again is a no-op
}

func TestCacheSweep(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("short", 1, 5*time.Millisecond)
	c.Set("long", 2, time.Hour)
	time.Sleep(20 * time.Millisecond)

	c.sweep()

	if c.Size() != 1 {
		t.Errorf("size = %d, want 1 after sweep", c.Size())
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("unexpired entry should survive sweep")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(100)
	defer c.Close()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("key-%d", j%20)
				c.Set(key, n, time.Minute)
				c.Get(key)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if c.Size() > 20 {
		t.Errorf("size = %d, want at most 20 distinct keys", c.Size())
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := NewCache(10)
	c.Close()
	c.Close() // must not panic
}
