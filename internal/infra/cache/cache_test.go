package cache_test

import (
	"testing"
	"time"

	"github.com/boddenberg/cards-api-go/internal/infra/cache"
)

func TestCache_SetAndGet(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	c.Set("bin:1", "value1")
	val, ok := c.Get("bin:1")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if val != "value1" {
		t.Errorf("expected 'value1', got '%s'", val)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	_, ok := c.Get("nonexistent")
	if ok {
		t.Fatal("expected cache miss for nonexistent key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c := cache.New[string](50 * time.Millisecond)
	defer c.Close()

	c.Set("bin:1", "value1")
	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get("bin:1")
	if ok {
		t.Fatal("expected cache entry to be expired")
	}
}

func TestCache_Delete(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	c.Set("bin:1", "value1")
	c.Delete("bin:1")

	_, ok := c.Get("bin:1")
	if ok {
		t.Fatal("expected key to be deleted")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCache_ZeroTTLDisables(t *testing.T) {
	c := cache.New[int](0)
	defer c.Close()

	c.Set("k", 1)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected disabled cache to miss")
	}
}

func TestCache_CloseIsIdempotent(t *testing.T) {
	c := cache.New[int](time.Minute)
	c.Close()
	c.Close()
}
