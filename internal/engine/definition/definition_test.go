package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/engine/definition"
	"go.trai.ch/zerr"
)

func TestNew_Defaults(t *testing.T) {
	d := definition.New("page")

	assert.Equal(t, "page", d.Name())
	assert.False(t, d.IsList())
	assert.Equal(t, definition.DefaultDelimiter, d.Delimiter())
	assert.Empty(t, d.Aliases())
	assert.Nil(t, d.AllowedValues())

	_, ok := d.Default()
	assert.False(t, ok)
}

func TestApplyConfig(t *testing.T) {
	d := definition.New("page")

	err := d.ApplyConfig(map[string]any{
		"aliases":   []any{"p", "target"},
		"message":   "Page to link to",
		"islist":    true,
		"delimiter": ";",
		"default":   []any{"Main Page", "Help:Contents"},
		"values":    "Main Page",
		"mustExist": false, // not ours, ignored
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"p", "target"}, d.Aliases())
	assert.Equal(t, "Page to link to", d.Message())
	assert.True(t, d.IsList())
	assert.Equal(t, ";", d.Delimiter())
	assert.Equal(t, []string{"Main Page"}, d.AllowedValues())

	defaults, ok := d.Default()
	assert.True(t, ok)
	assert.Equal(t, []string{"Main Page", "Help:Contents"}, defaults)
}

func TestApplyConfig_Rename(t *testing.T) {
	d := definition.New("page")
	require.NoError(t, d.ApplyConfig(map[string]any{"name": "target"}))
	assert.Equal(t, "target", d.Name())
}

func TestApplyConfig_InvalidTypes(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]any
		key  string
	}{
		{name: "islist not bool", opts: map[string]any{"islist": "yes"}, key: "islist"},
		{name: "trim not bool", opts: map[string]any{"trim": 1}, key: "trim"},
		{name: "name not string", opts: map[string]any{"name": 42}, key: "name"},
		{name: "values with non string", opts: map[string]any{"values": []any{"a", 3}}, key: "values"},
		{name: "empty delimiter", opts: map[string]any{"delimiter": ""}, key: "delimiter"},
		{name: "default map", opts: map[string]any{"default": map[string]any{}}, key: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := definition.New("p").ApplyConfig(tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidOption)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.key, zErr.Metadata()["key"])
		})
	}
}

func TestMatches(t *testing.T) {
	d := definition.New("page")
	require.NoError(t, d.ApplyConfig(map[string]any{"aliases": "target"}))

	assert.True(t, d.Matches("page"))
	assert.True(t, d.Matches("PAGE"))
	assert.True(t, d.Matches("Target"))
	assert.False(t, d.Matches("other"))
}

func TestSplit(t *testing.T) {
	t.Run("scalar is trimmed", func(t *testing.T) {
		d := definition.New("page")
		assert.Equal(t, []string{"Foo, Bar"}, d.Split("  Foo, Bar "))
	})

	t.Run("list is split and trimmed", func(t *testing.T) {
		d := definition.New("pages")
		require.NoError(t, d.ApplyConfig(map[string]any{"islist": true}))
		assert.Equal(t, []string{"Foo", "Bar", ""}, d.Split("Foo , Bar,"))
	})

	t.Run("trim disabled keeps spaces", func(t *testing.T) {
		d := definition.New("page")
		require.NoError(t, d.ApplyConfig(map[string]any{"trim": false}))
		assert.Equal(t, []string{" Foo "}, d.Split(" Foo "))
	})

	t.Run("tolower", func(t *testing.T) {
		d := definition.New("page")
		require.NoError(t, d.ApplyConfig(map[string]any{"tolower": true}))
		assert.Equal(t, []string{"foo"}, d.Split("FOO"))
	})
}

func TestValidate(t *testing.T) {
	t.Run("anything goes without allowed values", func(t *testing.T) {
		d := definition.New("page")
		assert.True(t, d.Validate(""))
		assert.True(t, d.Validate("Whatever"))
	})

	t.Run("allowed values restrict", func(t *testing.T) {
		d := definition.New("page")
		require.NoError(t, d.ApplyConfig(map[string]any{"values": []any{"Foo", "Bar"}}))
		assert.True(t, d.Validate("Foo"))
		assert.False(t, d.Validate("foo"))
		assert.False(t, d.Validate("Baz"))
	})

	t.Run("tolower compares lowercased", func(t *testing.T) {
		d := definition.New("page")
		require.NoError(t, d.ApplyConfig(map[string]any{"values": []any{"foo"}, "tolower": true}))
		assert.True(t, d.Validate("FOO"))
	})
}
