package pageindex

import (
	"context"
	"sync"

	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.PageOracle = (*CachedOracle)(nil)

// CachedOracle memoises the answers of another oracle.
// Concurrent lookups of the same page share one call to the inner oracle.
// Failed lookups are not remembered.
type CachedOracle struct {
	inner ports.PageOracle
	group singleflight.Group

	mu      sync.RWMutex
	answers map[string]bool
}

// NewCachedOracle wraps inner.
func NewCachedOracle(inner ports.PageOracle) *CachedOracle {
	return &CachedOracle{
		inner:   inner,
		answers: make(map[string]bool),
	}
}

// Exists implements ports.PageOracle.
func (c *CachedOracle) Exists(ctx context.Context, title *domain.Title) (bool, error) {
	key := title.PrefixedText()

	c.mu.RLock()
	known, ok := c.answers[key]
	c.mu.RUnlock()
	if ok {
		return known, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		exists, err := c.inner.Exists(ctx, title)
		if err != nil {
			return false, err
		}
		c.mu.Lock()
		c.answers[key] = exists
		c.mu.Unlock()
		return exists, nil
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}
