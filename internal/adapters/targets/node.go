package targets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccscope/internal/core/ports"
)

// NodeID is the graft node of the target set.
const NodeID graft.ID = "adapter.target_set"

func init() {
	graft.Register(graft.Node[ports.TargetSet]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TargetSet, error) {
			return NewStore(), nil
		},
	})
}
