package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ccscope/internal/adapters/interpose" //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/ccscope/internal/engine/discovery"
)

// Exit statuses of a shim that cannot hand over to the genuine program,
// matching what a POSIX shell reports.
const (
	ExitCannotExecute = 126
	ExitNotFound      = 127
)

// Shim is the process that stands in for a toolchain program.
type Shim struct {
	interposer *interpose.Interposer
	logger     ports.Logger
	stderr     io.Writer
	closeLog   func() error
}

// NewShim creates a Shim launching programs through interposer.
func NewShim(interposer *interpose.Interposer, log ports.Logger, stderr io.Writer) *Shim {
	return &Shim{
		interposer: interposer,
		logger:     log,
		stderr:     stderr,
		closeLog:   func() error { return nil },
	}
}

// NewShimFromEnv assembles the recording shim described by env.
func NewShimFromEnv(env []string, resolver ports.PathResolver, ledger ports.Ledger, targets ports.TargetSet) *Shim {
	settings := domain.SettingsFromEnv(env)

	log, closeLog := logger.Discard(), func() error { return nil }
	if settings.Enabled() {
		log, closeLog = logger.OpenShim(settings.ShimLogPath(), settings.LogLevel)
	}

	exclude := shimExclusions(settings)
	preprocessor := shell.NewPreprocessor(log, env, exclude...)
	observer := discovery.NewObserver(settings, resolver, ledger, targets, preprocessor, log)
	interposer := interpose.New(interpose.NewNative(exclude...), observer, log).
		WithEnviron(func() []string { return env })

	s := NewShim(interposer, log, os.Stderr)
	s.closeLog = closeLog
	return s
}

// NewPassthroughShim creates a Shim that launches the genuine program without
// recording anything. It serves when the recording shim cannot be assembled.
func NewPassthroughShim(env []string) *Shim {
	settings := domain.SettingsFromEnv(env)
	exclude := shimExclusions(settings)
	log := logger.Discard()
	interposer := interpose.New(interpose.NewNative(exclude...), passthrough{}, log).
		WithEnviron(func() []string { return env })
	return NewShim(interposer, log, os.Stderr)
}

// Run hands argv over to the genuine program named by argv[0]. It only
// returns when that fails, with the exit status to report.
func (s *Shim) Run(ctx context.Context, argv []string) int {
	defer func() {
		_ = s.closeLog()
	}()

	if len(argv) == 0 {
		_, _ = fmt.Fprintln(s.stderr, "ccscope: empty argument vector")
		return ExitCannotExecute
	}
	name := filepath.Base(argv[0])

	err := s.interposer.Execvp(ctx, name, argv)
	if err == nil {
		return 0
	}
	s.logger.Error(err)

	if errors.Is(err, domain.ErrGenuineNotFound) || errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintf(s.stderr, "%s: command not found\n", name)
		return ExitNotFound
	}
	_, _ = fmt.Fprintf(s.stderr, "%s: %v\n", name, err)
	return ExitCannotExecute
}

// shimExclusions lists what a PATH search must skip to avoid finding the shim again.
func shimExclusions(settings domain.Settings) []string {
	var exclude []string
	if settings.ShimDir != "" {
		exclude = append(exclude, settings.ShimDir)
	}
	if self, err := os.Executable(); err == nil {
		exclude = append(exclude, self)
	}
	return exclude
}

type passthrough struct{}

func (passthrough) Observe(context.Context, *domain.ProcessInvocation) {}
