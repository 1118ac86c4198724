// Package main is the entry point for ccscope.
//
// The binary is multi-call: started under a toolchain program name, through
// the symlinks of a shim directory, it stands in for that program; under any
// other name it is the ccscope CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/ccscope/cmd/ccscope/commands"
	"go.trai.ch/ccscope/internal/app"
	"go.trai.ch/ccscope/internal/core/domain"
	_ "go.trai.ch/ccscope/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// ShimProvider is a function that returns the shim of the current process.
type ShimProvider func(ctx context.Context, env []string) (*app.Shim, error)

func main() {
	env := os.Environ()
	if isShim(os.Args, env) {
		os.Exit(runShim(context.Background(), os.Args, env, func(ctx context.Context, _ []string) (*app.Shim, error) {
			s, _, err := graft.ExecuteFor[*app.Shim](ctx)
			return s, err
		}))
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

// isShim reports whether the process was started under a toolchain program name.
func isShim(argv, env []string) bool {
	if len(argv) == 0 {
		return false
	}
	return domain.SettingsFromEnv(env).Classifier.Classify(argv[0]) != domain.RoleNone
}

// runShim hands the process over to the genuine toolchain program. A shim
// that cannot be assembled still delegates, it only records nothing.
func runShim(ctx context.Context, argv, env []string, provider ShimProvider) int {
	shim, err := provider(ctx, env)
	if err != nil || shim == nil {
		shim = app.NewPassthroughShim(env)
	}
	return shim.Run(ctx, argv)
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildExecutionFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
