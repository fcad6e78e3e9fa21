// Package cache implements the decoded-message memo (spec component
// 4.C): a mapping from payload hash to the already-decoded message,
// bounded by an LRU so long-running nodes don't grow it unboundedly.
// It is purely a decoding memo — losing it is harmless, which is why a
// bounded LRU rather than an unbounded map is appropriate here, unlike
// the teacher's MsgStore which is an accountability audit log and must
// not silently evict.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ethereum/go-ethereum/common"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
)

// DefaultSize is used when a caller does not specify a capacity.
const DefaultSize = 4096

// Cache is a decoded-message memo keyed by payload hash.
type Cache struct {
	mu sync.RWMutex
	lc *lru.Cache
}

// New builds a Cache with the given capacity (DefaultSize if size <= 0).
func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	lc, err := lru.New(size)
	if err != nil {
		// lru.New only errors on size <= 0, which is excluded above.
		panic(err)
	}
	return &Cache{lc: lc}
}

// TryInsert records the decoded message for hash if not already present,
// reporting whether it was newly inserted.
func (c *Cache) TryInsert(hash common.Hash, m message.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.lc.Get(hash); ok {
		return false
	}
	c.lc.Add(hash, m)
	return true
}

// Message returns the decoded message for hash, or nil if unknown.
func (c *Cache) Message(hash common.Hash) message.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.lc.Get(hash)
	if !ok {
		return nil
	}
	return v.(message.Message)
}

// Clear empties the cache; called from the lifecycle controller on a
// full (view 0) reset.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lc.Purge()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lc.Len()
}
