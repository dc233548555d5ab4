package pageindex_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/titleparam/internal/adapters/pageindex"
	"go.trai.ch/titleparam/internal/core/domain"
)

func TestStore_Exists(t *testing.T) {
	ctx := context.Background()
	store := pageindex.NewMemoryStore("Main Page", "Help:Contents")

	tests := []struct {
		name  string
		title *domain.Title
		want  bool
	}{
		{name: "main namespace", title: domain.NewTitle("", "Main Page", ""), want: true},
		{name: "namespaced", title: domain.NewTitle("Help", "Contents", ""), want: true},
		{name: "fragment ignored", title: domain.NewTitle("", "Main Page", "History"), want: true},
		{name: "missing", title: domain.NewTitle("", "Nope", ""), want: false},
		{name: "wrong namespace", title: domain.NewTitle("", "Contents", ""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Exists(ctx, tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pageindex.NewMemoryStore("Foo").Exists(ctx, domain.NewTitle("", "Foo", ""))
	require.ErrorIs(t, err, context.Canceled)
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index", "pages.json")

	store1, err := pageindex.Open(path)
	require.NoError(t, err)
	assert.Zero(t, store1.Len())

	require.NoError(t, store1.Add(domain.NewTitle("", "Foo", ""), domain.NewTitle("Help", "Bar", "section")))

	store2, err := pageindex.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2, store2.Len())

	ok, err := store2.Exists(ctx, domain.NewTitle("Help", "Bar", ""))
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["Foo", "Help:Bar"]`, string(data))
}

func TestOpen(t *testing.T) {
	t.Run("empty path is memory only", func(t *testing.T) {
		store, err := pageindex.Open("")
		require.NoError(t, err)
		require.NoError(t, store.Add(domain.NewTitle("", "Foo", "")))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pages.json")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		store, err := pageindex.Open(path)
		require.NoError(t, err)
		assert.Zero(t, store.Len())
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pages.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := pageindex.Open(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrIndexReadFailed)
	})
}

func TestOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Foo"]`), 0o600))

	oracle, err := pageindex.NewOpener()(path)
	require.NoError(t, err)
	assert.IsType(t, &pageindex.CachedOracle{}, oracle)

	ok, err := oracle.Exists(context.Background(), domain.NewTitle("", "Foo", ""))
	require.NoError(t, err)
	assert.True(t, ok)
}
