package lexicon

import "sync"

// WordCache maps words to their dictionary IDs across a batch run so
// repeated words skip the database round trip. Safe for concurrent workers.
type WordCache struct {
	mu    sync.RWMutex
	cache map[string]int64
}

func NewWordCache() *WordCache {
	return &WordCache{cache: make(map[string]int64)}
}

func (c *WordCache) Get(word string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.cache[word]
	return id, ok
}

func (c *WordCache) Put(word string, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[word] = id
}

func (c *WordCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func (c *WordCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]int64)
}
