package report

import "github.com/sandeepkv93/insightd/internal/model"

type cacheEntry struct {
	key    string
	report model.Report
}

// ringCache is a fixed-capacity FIFO of reports keyed by period. Inserting
// past capacity evicts the oldest entry; re-inserting an existing key
// replaces it in place. Not safe for concurrent use; the Service serializes
// access.
type ringCache struct {
	capacity int
	entries  []cacheEntry
}

func newRingCache(capacity int) *ringCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &ringCache{capacity: capacity, entries: make([]cacheEntry, 0, capacity)}
}

func (c *ringCache) get(key string) (model.Report, bool) {
	for _, e := range c.entries {
		if e.key == key {
			return e.report, true
		}
	}
	return model.Report{}, false
}

func (c *ringCache) put(key string, r model.Report) {
	for i := range c.entries {
		if c.entries[i].key == key {
			c.entries[i].report = r
			return
		}
	}
	c.entries = append(c.entries, cacheEntry{key: key, report: r})
	if len(c.entries) > c.capacity {
		c.entries = c.entries[1:]
	}
}

func (c *ringCache) len() int {
	return len(c.entries)
}

// snapshot returns the cached reports oldest first.
func (c *ringCache) snapshot() []model.Report {
	out := make([]model.Report, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.report)
	}
	return out
}
