// Package pageindex implements page existence lookups backed by a flat JSON index file.
package pageindex

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PageOracle = (*Store)(nil)

// Store implements ports.PageOracle using a JSON array of page names.
// A Store without a path lives in memory only.
type Store struct {
	path  string
	mu    sync.RWMutex
	pages map[string]struct{}
}

// NewMemoryStore creates an empty Store that is never persisted.
func NewMemoryStore(pages ...string) *Store {
	s := &Store{pages: make(map[string]struct{}, len(pages))}
	for _, p := range pages {
		s.pages[p] = struct{}{}
	}
	return s
}

// Open creates a Store backed by the file at path. A missing file is an empty index.
// An empty path yields a memory store.
func Open(path string) (*Store, error) {
	if path == "" {
		return NewMemoryStore(), nil
	}
	s := &Store{
		path:  filepath.Clean(path),
		pages: make(map[string]struct{}),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return indexError(domain.ErrIndexReadFailed, s.path, err)
	}

	if len(data) == 0 {
		return nil
	}

	var pages []string
	if err := json.Unmarshal(data, &pages); err != nil {
		return indexError(domain.ErrIndexReadFailed, s.path, err)
	}
	for _, p := range pages {
		s.pages[p] = struct{}{}
	}
	return nil
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	pages := make([]string, 0, len(s.pages))
	for p := range s.pages {
		pages = append(pages, p)
	}
	s.mu.RUnlock()
	slices.Sort(pages)

	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return indexError(domain.ErrIndexWriteFailed, s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return indexError(domain.ErrIndexWriteFailed, s.path, err)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return indexError(domain.ErrIndexWriteFailed, s.path, err)
	}
	return nil
}

// Exists implements ports.PageOracle. Fragments are ignored.
func (s *Store) Exists(ctx context.Context, title *domain.Title) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.pages[title.PrefixedText()]
	return ok, nil
}

// Add records titles as existing pages and persists the index.
func (s *Store) Add(titles ...*domain.Title) error {
	s.mu.Lock()
	for _, t := range titles {
		s.pages[t.PrefixedText()] = struct{}{}
	}
	s.mu.Unlock()

	return s.save()
}

// Len returns the number of known pages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}

func indexError(sentinel error, path string, cause error) error {
	err := zerr.With(zerr.Wrap(sentinel, "page index"), "path", path)
	return zerr.With(err, "cause", cause.Error())
}
