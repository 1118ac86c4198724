package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccscope/internal/core/ports"
)

// NodeID is the graft node of the driver logger.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
