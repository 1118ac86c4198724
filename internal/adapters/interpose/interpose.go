// Package interpose stands in front of the process-creation entry points a
// build system uses to launch toolchain programs.
//
// Every entry point observes the launch first and then delegates to the
// genuine implementation, which is resolved lazily and once per process.
// Observation can neither fail nor alter the delegated call.
package interpose

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
)

// Op identifies a process-creation entry point.
type Op int

const (
	// OpExecv replaces the process with a program named by path.
	OpExecv Op = iota
	// OpExecvp replaces the process with a program searched on PATH.
	OpExecvp
	// OpExecve replaces the process with a program named by path, with an explicit environment.
	OpExecve
	// OpSpawn starts a child process and returns its pid.
	OpSpawn

	opCount
)

// String returns the conventional name of the entry point.
func (o Op) String() string {
	switch o {
	case OpExecv:
		return "execv"
	case OpExecvp:
		return "execvp"
	case OpExecve:
		return "execve"
	case OpSpawn:
		return "posix_spawn"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Call is one delegated launch.
type Call struct {
	Path string
	Argv []string
	Env  []string
	Dir  string
}

// Entry is the genuine implementation of an entry point. Exec-style entries
// only return on failure; spawn returns the child's pid.
type Entry func(call Call) (int, error)

// Lookup fetches the genuine implementation of an entry point.
type Lookup interface {
	Lookup(op Op) (Entry, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(op Op) (Entry, error)

// Lookup calls f.
func (f LookupFunc) Lookup(op Op) (Entry, error) {
	return f(op)
}

// Observer inspects a launch before it happens. It may replace inv.Env with
// the environment the launched process must receive.
type Observer interface {
	Observe(ctx context.Context, inv *domain.ProcessInvocation)
}

// Interposer implements the interposed entry points.
type Interposer struct {
	observer Observer
	logger   ports.Logger
	genuine  [opCount]func() (Entry, error)
	environ  func() []string
	getwd    func() (string, error)
}

// New creates an Interposer delegating to the entries of lookup.
func New(lookup Lookup, observer Observer, logger ports.Logger) *Interposer {
	i := &Interposer{
		observer: observer,
		logger:   logger,
		environ:  os.Environ,
		getwd:    os.Getwd,
	}
	for op := range opCount {
		i.genuine[op] = sync.OnceValues(func() (Entry, error) {
			return lookup.Lookup(op)
		})
	}
	return i
}

// WithEnviron replaces the source of the process environment used by Execv and Execvp.
func (i *Interposer) WithEnviron(environ func() []string) *Interposer {
	i.environ = environ
	return i
}

// Execv launches path with argv and the process environment.
func (i *Interposer) Execv(ctx context.Context, path string, argv []string) error {
	_, err := i.delegate(ctx, OpExecv, path, argv, i.environ(), "")
	return err
}

// Execvp launches file, searched on PATH, with argv and the process environment.
func (i *Interposer) Execvp(ctx context.Context, file string, argv []string) error {
	_, err := i.delegate(ctx, OpExecvp, file, argv, i.environ(), "")
	return err
}

// Execve launches path with argv and env.
func (i *Interposer) Execve(ctx context.Context, path string, argv, env []string) error {
	_, err := i.delegate(ctx, OpExecve, path, argv, env, "")
	return err
}

// Spawn starts path with argv and env in dir and returns the child's pid.
// An empty dir means the current directory.
func (i *Interposer) Spawn(ctx context.Context, path string, argv, env []string, dir string) (int, error) {
	return i.delegate(ctx, OpSpawn, path, argv, env, dir)
}

func (i *Interposer) delegate(ctx context.Context, op Op, program string, argv, env []string, dir string) (int, error) {
	entry, err := i.genuine[op]()
	if err != nil {
		return -1, err
	}

	inv := &domain.ProcessInvocation{
		Program: program,
		Args:    slices.Clone(argv),
		Dir:     dir,
		Env:     env,
	}
	if inv.Dir == "" {
		if wd, err := i.getwd(); err == nil {
			inv.Dir = wd
		}
	}
	i.observe(ctx, inv)

	return entry(Call{Path: program, Argv: argv, Env: inv.Env, Dir: dir})
}

// observe runs the observer, isolating the delegated call from its panics.
func (i *Interposer) observe(ctx context.Context, inv *domain.ProcessInvocation) {
	env := inv.Env
	defer func() {
		if r := recover(); r != nil {
			inv.Env = env
			i.logger.Warn(fmt.Sprintf("observation of %s panicked: %v", inv.Program, r))
		}
	}()
	i.observer.Observe(ctx, inv)
}
