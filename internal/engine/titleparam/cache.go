package titleparam

import (
	"slices"

	"go.trai.ch/titleparam/internal/core/domain"
)

// Cache remembers resolved titles for the lifetime of a parameter.
// Entries are only ever added: once a canonical name is stored, every later
// lookup of that name returns the same *domain.Title.
type Cache interface {
	// Lookup returns the title stored under key. The key is either a canonical
	// name or a raw spelling that was stored before.
	Lookup(key string) (*domain.Title, bool)

	// Store records title under its canonical name unless a title with that
	// name is already present, remembers raw as an alias for it and returns the
	// stored instance.
	Store(raw string, title *domain.Title) *domain.Title

	// Len returns the number of distinct canonical names.
	Len() int

	// Names returns the stored canonical names in sorted order.
	Names() []string
}

// table is the unsynchronised storage shared by both cache implementations.
type table struct {
	titles  map[domain.CanonicalName]*domain.Title
	aliases map[string]domain.CanonicalName
}

func newTable() table {
	return table{
		titles:  make(map[domain.CanonicalName]*domain.Title),
		aliases: make(map[string]domain.CanonicalName),
	}
}

func (t *table) alias(raw string) (domain.CanonicalName, bool) {
	name, ok := t.aliases[raw]
	return name, ok
}

func (t *table) title(name domain.CanonicalName) (*domain.Title, bool) {
	title, ok := t.titles[name]
	return title, ok
}

func (t *table) insert(title *domain.Title) *domain.Title {
	if existing, ok := t.titles[title.Name()]; ok {
		return existing
	}
	t.titles[title.Name()] = title
	return title
}

func (t *table) remember(raw string, name domain.CanonicalName) {
	if raw == name.String() {
		return
	}
	if _, ok := t.aliases[raw]; !ok {
		t.aliases[raw] = name
	}
}

func (t *table) names(dst []string) []string {
	for name := range t.titles {
		dst = append(dst, name.String())
	}
	return dst
}

// MapCache is a Cache for single goroutine use.
type MapCache struct {
	t table
}

var _ Cache = (*MapCache)(nil)

// NewMapCache creates an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{t: newTable()}
}

// Lookup implements Cache.
func (c *MapCache) Lookup(key string) (*domain.Title, bool) {
	if name, ok := c.t.alias(key); ok {
		return c.t.title(name)
	}
	return c.t.title(domain.NewCanonicalName(key))
}

// Store implements Cache.
func (c *MapCache) Store(raw string, title *domain.Title) *domain.Title {
	stored := c.t.insert(title)
	c.t.remember(raw, stored.Name())
	return stored
}

// Len implements Cache.
func (c *MapCache) Len() int {
	return len(c.t.titles)
}

// Names implements Cache.
func (c *MapCache) Names() []string {
	names := c.t.names(make([]string, 0, len(c.t.titles)))
	slices.Sort(names)
	return names
}
