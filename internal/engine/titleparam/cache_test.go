package titleparam_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/engine/titleparam"
)

func caches() map[string]func() titleparam.Cache {
	return map[string]func() titleparam.Cache{
		"map":     func() titleparam.Cache { return titleparam.NewMapCache() },
		"sharded": func() titleparam.Cache { return titleparam.NewShardedCache(4) },
		"default": func() titleparam.Cache { return titleparam.NewShardedCache(0) },
	}
}

func TestCache_StoreAndLookup(t *testing.T) {
	for name, newCache := range caches() {
		t.Run(name, func(t *testing.T) {
			c := newCache()

			_, ok := c.Lookup("Foo")
			assert.False(t, ok)

			title := domain.NewTitle("", "Foo", "")
			stored := c.Store("foo", title)
			assert.Same(t, title, stored)

			got, ok := c.Lookup("Foo")
			require.True(t, ok)
			assert.Same(t, title, got)

			got, ok = c.Lookup("foo")
			require.True(t, ok)
			assert.Same(t, title, got)

			_, ok = c.Lookup("FOO")
			assert.False(t, ok)
		})
	}
}

func TestCache_InsertIfAbsent(t *testing.T) {
	for name, newCache := range caches() {
		t.Run(name, func(t *testing.T) {
			c := newCache()
			first := domain.NewTitle("", "Foo", "")
			second := domain.NewTitle("", "Foo", "")

			c.Store("Foo", first)
			stored := c.Store("foo", second)

			assert.Same(t, first, stored)
			got, ok := c.Lookup("foo")
			require.True(t, ok)
			assert.Same(t, first, got)
			assert.Equal(t, 1, c.Len())
		})
	}
}

func TestCache_Names(t *testing.T) {
	for name, newCache := range caches() {
		t.Run(name, func(t *testing.T) {
			c := newCache()
			c.Store("b", domain.NewTitle("", "B", ""))
			c.Store("help:a", domain.NewTitle("Help", "A", ""))
			c.Store("a", domain.NewTitle("", "A", ""))

			assert.Equal(t, []string{"A", "B", "Help:A"}, c.Names())
			assert.Equal(t, 3, c.Len())
		})
	}
}

func TestShardedCache_Concurrent(t *testing.T) {
	c := titleparam.NewShardedCache(8)

	const workers = 32
	const names = 50

	results := make([][]*domain.Title, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]*domain.Title, names)
			for i := range names {
				raw := fmt.Sprintf("page_%d", i)
				out[i] = c.Store(raw, domain.NewTitle("", fmt.Sprintf("Page %d", i), ""))
			}
			results[w] = out
		}()
	}
	wg.Wait()

	assert.Equal(t, names, c.Len())
	for i := range names {
		want := results[0][i]
		for w := 1; w < workers; w++ {
			assert.Same(t, want, results[w][i])
		}
		got, ok := c.Lookup(fmt.Sprintf("page_%d", i))
		require.True(t, ok)
		assert.Same(t, want, got)
	}
}
