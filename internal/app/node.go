package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/titleparam/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/titleparam/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/titleparam/internal/adapters/pageindex"   //nolint:depguard // Wired in app layer
	"go.trai.ch/titleparam/internal/adapters/titleparser" //nolint:depguard // Wired in app layer
	"go.trai.ch/titleparam/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			titleparser.NodeID,
			pageindex.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	newParser, err := graft.Dep[titleparser.Factory](ctx)
	if err != nil {
		return nil, err
	}

	openOracle, err := graft.Dep[pageindex.Opener](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, ParserFactory(newParser), OracleOpener(openOracle)), nil
}
