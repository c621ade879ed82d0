package searcher

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/askroute/pkg/types"
)

// cacheEntry is a cached hit list with its expiry
type cacheEntry struct {
	hits      []types.Hit
	expiresAt time.Time
}

// resultCache is a TTL-bounded LRU of hit lists. A nil cache is valid and
// never stores anything.
type resultCache struct {
	lru *lru.Cache[[32]byte, cacheEntry]
	ttl time.Duration
	now func() time.Time
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 || ttl <= 0 {
		return nil
	}
	c, err := lru.New[[32]byte, cacheEntry](size)
	if err != nil {
		return nil
	}
	return &resultCache{lru: c, ttl: ttl, now: time.Now}
}

func (c *resultCache) get(key [32]byte) ([]types.Hit, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, false
	}
	return copyHits(entry.hits), true
}

// put stores a copy of hits. Empty lists are not cached so a transient
// outage is retried on the next call.
func (c *resultCache) put(key [32]byte, hits []types.Hit) {
	if c == nil || len(hits) == 0 {
		return
	}
	c.lru.Add(key, cacheEntry{hits: copyHits(hits), expiresAt: c.now().Add(c.ttl)})
}

func (c *resultCache) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

func (c *resultCache) size() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// cacheKey hashes the parameters that determine a result list
func cacheKey(kind, query string, limit int) [32]byte {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte(0)
	b.WriteString(strings.ToLower(query))
	b.WriteByte(0)
	fmt.Fprintf(&b, "%d", limit)
	return sha256.Sum256([]byte(b.String()))
}

func copyHits(hits []types.Hit) []types.Hit {
	return append([]types.Hit(nil), hits...)
}
