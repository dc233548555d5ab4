// Package app implements the application layer for titleparam.
package app

import (
	"context"

	"go.trai.ch/titleparam/internal/core/ports"
	"go.trai.ch/titleparam/internal/engine/titleparam"
	"go.trai.ch/zerr"
)

// ParserFactory builds a title parser for the namespaces of a manifest.
type ParserFactory func(namespaces []string) ports.TitleParser

// OracleOpener opens the existence oracle for the index path of a manifest.
type OracleOpener func(path string) (ports.PageOracle, error)

// App represents the main application logic.
type App struct {
	loader     ports.ConfigLoader
	logger     ports.Logger
	newParser  ParserFactory
	openOracle OracleOpener
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, logger ports.Logger, newParser ParserFactory, openOracle OracleOpener) *App {
	return &App{
		loader:     loader,
		logger:     logger,
		newParser:  newParser,
		openOracle: openOracle,
	}
}

// Load reads the manifest at configPath and builds a Resolver for it.
// Parameters get a sharded cache because Resolve validates list items concurrently.
func (a *App) Load(configPath string) (*Resolver, error) {
	manifest, err := a.loader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	parser := a.newParser(manifest.Namespaces)
	oracle, err := a.openOracle(manifest.IndexPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open page index")
	}

	params := make([]*titleparam.TitleParam, 0, len(manifest.Params))
	for _, spec := range manifest.Params {
		p, err := titleparam.FromSpec(spec, parser, oracle,
			titleparam.WithLogger(a.logger),
			titleparam.WithCache(titleparam.NewShardedCache(titleparam.DefaultShards)),
		)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	return &Resolver{params: params, logger: a.logger}, nil
}

// Run loads the manifest and resolves name=value arguments against it.
func (a *App) Run(ctx context.Context, configPath string, args []string) ([]Result, error) {
	r, err := a.Load(configPath)
	if err != nil {
		return nil, err
	}

	inputs, err := r.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return r.Resolve(ctx, inputs)
}
