package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccscope/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	ShimsNodeID    graft.ID = "adapter.fs.shims"
)

func init() {
	// Walker Node
	graft.Register(graft.Node[ports.ArtifactWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactWalker, error) {
			return NewWalker(), nil
		},
	})

	// Resolver Node
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Shim Installer Node
	graft.Register(graft.Node[ports.ShimInstaller]{
		ID:        ShimsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ShimInstaller, error) {
			return NewShimInstaller(), nil
		},
	})
}
