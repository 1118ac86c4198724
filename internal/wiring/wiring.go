// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ccscope/internal/adapters/config"
	_ "go.trai.ch/ccscope/internal/adapters/fs"
	_ "go.trai.ch/ccscope/internal/adapters/ledger"
	_ "go.trai.ch/ccscope/internal/adapters/logger"
	_ "go.trai.ch/ccscope/internal/adapters/shell"
	_ "go.trai.ch/ccscope/internal/adapters/targets"
	// Register app nodes.
	_ "go.trai.ch/ccscope/internal/app"
)
