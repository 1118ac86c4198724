package ledger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccscope/internal/core/ports"
)

// NodeID is the graft node of the compile-unit ledger.
const NodeID graft.ID = "adapter.ledger"

func init() {
	graft.Register(graft.Node[ports.Ledger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Ledger, error) {
			return New(), nil
		},
	})
}
