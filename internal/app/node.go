package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccscope/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/ledger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/targets" //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
	// ShimNodeID is the unique identifier for the toolchain shim Graft node.
	ShimNodeID graft.ID = "app.shim"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			ledger.NodeID,
			targets.NodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			fs.ShimsNodeID,
			fs.ResolverNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})

	// Shim Node
	graft.Register(graft.Node[*Shim]{
		ID:        ShimNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			ledger.NodeID,
			targets.NodeID,
		},
		Run: func(ctx context.Context) (*Shim, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.Ledger](ctx)
			if err != nil {
				return nil, err
			}

			set, err := graft.Dep[ports.TargetSet](ctx)
			if err != nil {
				return nil, err
			}

			return NewShimFromEnv(os.Environ(), resolver, store, set), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.Ledger](ctx)
	if err != nil {
		return nil, err
	}

	set, err := graft.Dep[ports.TargetSet](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.ArtifactWalker](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	shims, err := graft.Dep[ports.ShimInstaller](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, log, store, set, walker, hasher, shims, resolver), nil
}
