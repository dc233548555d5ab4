package titleparser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/titleparam/internal/core/ports"
)

// NodeID is the graft identifier of the parser factory.
const NodeID graft.ID = "adapter.title_parser"

// Factory builds parsers for a namespace set taken from a manifest.
type Factory func(namespaces []string) ports.TitleParser

// NewFactory returns a Factory that falls back to DefaultNamespaces when given none.
func NewFactory() Factory {
	return func(namespaces []string) ports.TitleParser {
		if len(namespaces) == 0 {
			return New()
		}
		return New(WithNamespaces(namespaces...))
	}
}

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return NewFactory(), nil
		},
	})
}
