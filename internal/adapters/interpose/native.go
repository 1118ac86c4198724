//go:build unix

package interpose

import (
	"context"
	"errors"
	"os"
	"slices"

	"go.trai.ch/ccscope/internal/adapters/shell"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ Lookup = (*Native)(nil)

// Native resolves entry points to the operating system's process primitives.
type Native struct {
	exclude []string
}

// NewNative creates a Native lookup. PATH searches skip every directory or
// executable in exclude, so the shim never resolves to itself.
func NewNative(exclude ...string) *Native {
	return &Native{exclude: exclude}
}

// Lookup returns the genuine implementation of op.
func (n *Native) Lookup(op Op) (Entry, error) {
	switch op {
	case OpExecv, OpExecve:
		return n.exec, nil
	case OpExecvp:
		return n.execPath, nil
	case OpSpawn:
		return n.spawn, nil
	default:
		return nil, zerr.With(domain.ErrUnknownEntryPoint, "op", op.String())
	}
}

// Resolve finds the genuine executable for file on the PATH of env.
func (n *Native) Resolve(file string, env []string) (string, error) {
	path, err := shell.LookPath(file, env, n.exclude...)
	if err != nil {
		return "", errors.Join(domain.ErrGenuineNotFound, zerr.With(err, "program", file))
	}
	return path, nil
}

func (n *Native) exec(call Call) (int, error) {
	err := unix.Exec(call.Path, call.Argv, call.Env)
	return -1, zerr.With(zerr.Wrap(err, "exec failed"), "path", call.Path)
}

// execPath searches PATH like execvp and rewrites argv[0] to the genuine
// path, so compiler drivers locate their own installation prefix.
func (n *Native) execPath(call Call) (int, error) {
	path, err := n.Resolve(call.Path, call.Env)
	if err != nil {
		return -1, err
	}
	argv := slices.Clone(call.Argv)
	if len(argv) > 0 {
		argv[0] = path
	}
	return n.exec(Call{Path: path, Argv: argv, Env: call.Env, Dir: call.Dir})
}

func (n *Native) spawn(call Call) (int, error) {
	proc, err := os.StartProcess(call.Path, call.Argv, &os.ProcAttr{
		Dir:   call.Dir,
		Env:   call.Env,
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		return -1, zerr.With(zerr.Wrap(err, "spawn failed"), "path", call.Path)
	}
	pid := proc.Pid
	_ = proc.Release()
	return pid, nil
}

// Wait blocks until the spawned child pid exits and returns its exit status.
// A child killed by a signal reports 128 plus the signal number, as a shell
// does. Cancelling ctx kills the child.
func Wait(ctx context.Context, pid int) (int, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = unix.Kill(pid, unix.SIGKILL)
	})
	defer stop()

	var status unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &status, 0, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return -1, zerr.With(zerr.Wrap(err, "wait failed"), "pid", pid)
		}
		break
	}

	if status.Signaled() {
		return 128 + int(status.Signal()), nil
	}
	return status.ExitStatus(), nil
}
