package pageindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/titleparam/internal/core/ports"
)

// NodeID is the graft identifier of the oracle opener.
const NodeID graft.ID = "adapter.page_index"

// Opener opens the existence oracle for an index path taken from a manifest.
type Opener func(path string) (ports.PageOracle, error)

// NewOpener returns an Opener that wraps every opened Store in a CachedOracle.
func NewOpener() Opener {
	return func(path string) (ports.PageOracle, error) {
		store, err := Open(path)
		if err != nil {
			return nil, err
		}
		return NewCachedOracle(store), nil
	}
}

func init() {
	graft.Register(graft.Node[Opener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Opener, error) {
			return NewOpener(), nil
		},
	})
}
