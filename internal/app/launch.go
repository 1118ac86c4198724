package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ccscope/internal/adapters/interpose" //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/engine/discovery"
	"go.trai.ch/zerr"
)

// launch runs the build command. A toolchain program named by path never
// passes through the shim directory, so its own launch is observed here and
// it is spawned without a PATH search.
func (a *App) launch(ctx context.Context, settings domain.Settings, cmd domain.BuildCommand, env []string) error {
	program := cmd.Args[0]
	if !strings.ContainsRune(program, filepath.Separator) || settings.Classifier.Classify(program) == domain.RoleNone {
		return a.executor.Execute(ctx, cmd, env, a.stdout, a.stderr)
	}

	fullEnv := shell.ResolveEnvironment(os.Environ(), env)
	exclude := shimExclusions(settings)
	preprocessor := shell.NewPreprocessor(a.logger, fullEnv, exclude...)
	observer := discovery.NewObserver(settings, a.resolver, a.ledger, a.targets, preprocessor, a.logger)
	interposer := interpose.New(a.lookup(exclude...), observer, a.logger)

	pid, err := interposer.Spawn(ctx, program, cmd.Args, fullEnv, cmd.Dir)
	if err != nil {
		return err
	}
	code, err := a.wait(ctx, pid)
	if err != nil {
		return err
	}
	if code != 0 {
		return zerr.With(zerr.New("command failed"), "exit_code", code)
	}
	return nil
}

func nativeLookup(exclude ...string) interpose.Lookup {
	return interpose.NewNative(exclude...)
}
