package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/avezina/scrutiny/internal/model"
)

func modelCacheConfig(enabled bool, dir string) model.CacheConfig {
	return model.CacheConfig{
		Enabled:   enabled,
		Dir:       dir,
		MemoryTTL: time.Minute,
		DiskTTL:   time.Minute,
	}
}

func TestKey_NamespacedAndStable(t *testing.T) {
	k1 := Key("urlcheck", "https://example.com")
	k2 := Key("urlcheck", "https://example.com")
	k3 := Key("search", "https://example.com")

	if k1 != k2 {
		t.Error("expected identical inputs to hash identically")
	}
	if k1 == k3 {
		t.Error("expected namespaces to separate keys")
	}
	if !strings.HasPrefix(k1, "scrutiny:v1:urlcheck:") {
		t.Errorf("unexpected key shape %q", k1)
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Errorf("expected hit with value v, got %q found=%v", got, found)
	}

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", []byte("v"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	key := Key("urlcheck", "https://example.com")
	if err := c.Set(key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found || string(got) != "payload" {
		t.Errorf("expected disk hit, got %q found=%v", got, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	_ = c.Set("k", []byte("v"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
	// Expired entries are removed lazily on read
	if _, found := c.Get("k"); found {
		t.Error("expected entry to stay gone")
	}
}

func TestLayeredCache_DiskHitPromoted(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// A fresh layered cache over the same directory has a cold memory
	// layer; the read must fall through to disk.
	fresh := NewLayeredCache(time.Minute, dir, time.Minute)
	got, found := fresh.Get("k")
	if !found || string(got) != "v" {
		t.Fatalf("expected disk fallthrough, got %q found=%v", got, found)
	}

	// And the hit is promoted into memory
	if val, found := fresh.memory.Get("k"); !found || string(val) != "v" {
		t.Error("expected disk hit to be promoted to memory")
	}
}

func TestLayeredCache_Clear(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Minute)
	_ = c.Set("k", []byte("v"), time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after clear")
	}
}

func TestFromConfig(t *testing.T) {
	if c := FromConfig(modelCacheConfig(false, "")); c != nil {
		t.Error("expected nil cache when disabled")
	}

	c := FromConfig(modelCacheConfig(true, t.TempDir()))
	if c == nil {
		t.Fatal("expected cache when enabled")
	}
	if _, ok := c.(*LayeredCache); !ok {
		t.Errorf("expected layered cache with a directory, got %T", c)
	}
}
