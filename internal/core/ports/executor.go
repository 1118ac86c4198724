// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/ccscope/internal/core/domain"
)

// Executor defines the interface for running the wrapped build command.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd with the specified environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format
	// that are layered over the current process environment. A PATH entry is
	// prepended to the inherited PATH.
	//
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd domain.BuildCommand, env []string, stdout, stderr io.Writer) error
}
