package report

import (
	"fmt"
	"testing"

	"github.com/sandeepkv93/insightd/internal/model"
)

func TestRingCachePutGet(t *testing.T) {
	c := newRingCache(3)
	if _, ok := c.get("weekly:2026-02-09"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.put("weekly:2026-02-09", model.Report{ID: "r-1"})
	got, ok := c.get("weekly:2026-02-09")
	if !ok || got.ID != "r-1" {
		t.Fatalf("expected hit for r-1, got %+v ok=%v", got, ok)
	}
}

func TestRingCacheReplacesExistingKey(t *testing.T) {
	c := newRingCache(3)
	c.put("k", model.Report{ID: "old"})
	c.put("k", model.Report{ID: "new"})
	if c.len() != 1 {
		t.Fatalf("expected single entry after replace, got %d", c.len())
	}
	got, _ := c.get("k")
	if got.ID != "new" {
		t.Fatalf("expected replacement, got %s", got.ID)
	}
}

func TestRingCacheEvictsFIFO(t *testing.T) {
	c := newRingCache(3)
	for i := 1; i <= 5; i++ {
		key := fmt.Sprintf("k-%d", i)
		c.put(key, model.Report{ID: fmt.Sprintf("r-%d", i)})
	}
	if c.len() != 3 {
		t.Fatalf("expected capacity 3, got %d", c.len())
	}
	for _, gone := range []string{"k-1", "k-2"} {
		if _, ok := c.get(gone); ok {
			t.Fatalf("expected %s evicted", gone)
		}
	}
	// Touching an old entry must not protect it: k-3 is still the
	// oldest even after a read.
	if _, ok := c.get("k-3"); !ok {
		t.Fatal("expected k-3 present")
	}
	c.put("k-6", model.Report{ID: "r-6"})
	if _, ok := c.get("k-3"); ok {
		t.Fatal("expected FIFO eviction of k-3 despite recent read")
	}
}

func TestRingCacheMinimumCapacity(t *testing.T) {
	c := newRingCache(0)
	c.put("a", model.Report{ID: "r-a"})
	c.put("b", model.Report{ID: "r-b"})
	if c.len() != 1 {
		t.Fatalf("expected capacity clamp to 1, got %d", c.len())
	}
	if _, ok := c.get("b"); !ok {
		t.Fatal("expected newest entry retained")
	}
}
