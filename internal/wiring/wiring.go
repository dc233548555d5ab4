// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/titleparam/internal/adapters/config"
	_ "go.trai.ch/titleparam/internal/adapters/logger"
	_ "go.trai.ch/titleparam/internal/adapters/pageindex"
	_ "go.trai.ch/titleparam/internal/adapters/titleparser"
	// Register app nodes.
	_ "go.trai.ch/titleparam/internal/app"
)
