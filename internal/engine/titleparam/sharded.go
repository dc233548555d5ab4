package titleparam

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/titleparam/internal/core/domain"
)

// DefaultShards is the shard count used by NewShardedCache when n <= 0.
const DefaultShards = 16

// ShardedCache is a Cache safe for concurrent use.
// Keys are spread over shards by their xxhash; each shard has its own lock,
// so insert-if-absent on one canonical name never races with itself.
type ShardedCache struct {
	shards []shard
}

type shard struct {
	mu sync.RWMutex
	t  table
}

var _ Cache = (*ShardedCache)(nil)

// NewShardedCache creates an empty ShardedCache with n shards.
func NewShardedCache(n int) *ShardedCache {
	if n <= 0 {
		n = DefaultShards
	}
	c := &ShardedCache{shards: make([]shard, n)}
	for i := range c.shards {
		c.shards[i].t = newTable()
	}
	return c
}

func (c *ShardedCache) shardFor(key string) *shard {
	return &c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

// Lookup implements Cache.
func (c *ShardedCache) Lookup(key string) (*domain.Title, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	name, aliased := s.t.alias(key)
	if !aliased {
		title, ok := s.t.title(domain.NewCanonicalName(key))
		s.mu.RUnlock()
		return title, ok
	}
	s.mu.RUnlock()

	owner := c.shardFor(name.String())
	owner.mu.RLock()
	defer owner.mu.RUnlock()
	return owner.t.title(name)
}

// Store implements Cache.
func (c *ShardedCache) Store(raw string, title *domain.Title) *domain.Title {
	owner := c.shardFor(title.FullText())
	owner.mu.Lock()
	stored := owner.t.insert(title)
	owner.mu.Unlock()

	s := c.shardFor(raw)
	s.mu.Lock()
	s.t.remember(raw, stored.Name())
	s.mu.Unlock()

	return stored
}

// Len implements Cache.
func (c *ShardedCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.t.titles)
		s.mu.RUnlock()
	}
	return n
}

// Names implements Cache.
func (c *ShardedCache) Names() []string {
	var names []string
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		names = s.t.names(names)
		s.mu.RUnlock()
	}
	slices.Sort(names)
	return names
}
