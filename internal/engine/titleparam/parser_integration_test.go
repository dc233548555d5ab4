package titleparam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/titleparam/internal/adapters/pageindex"
	"go.trai.ch/titleparam/internal/adapters/titleparser"
	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/engine/definition"
	"go.trai.ch/titleparam/internal/engine/titleparam"
)

func TestValidateFormat_WithParser(t *testing.T) {
	ctx := context.Background()
	parser := titleparser.New()

	t.Run("extra leading colons are rejected and not cached", func(t *testing.T) {
		p := titleparam.New(definition.New("page"), parser, pageindex.NewMemoryStore("Foo", "Talk:Foo"))

		for _, input := range []string{"::Foo", ": :Talk:Foo"} {
			assert.False(t, p.Validate(ctx, domain.Raw(input), domain.ModeStringly), input)
		}
		assert.Zero(t, p.Cache().Len())
	})

	t.Run("formatting a canonical name matches a fresh parse", func(t *testing.T) {
		p := titleparam.New(definition.New("page"), parser, pageindex.NewMemoryStore("Talk:Foo"))

		require.True(t, p.Validate(ctx, domain.Raw(":talk:foo"), domain.ModeStringly))
		cached, err := p.Format(domain.Raw(":talk:foo"))
		require.NoError(t, err)

		formatted, err := p.Format(domain.Raw(cached.FullText()))
		require.NoError(t, err)
		assert.Same(t, cached, formatted)

		fresh, err := parser.Parse(cached.FullText())
		require.NoError(t, err)
		assert.True(t, fresh.Equal(formatted))
	})
}
