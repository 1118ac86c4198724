// Package shell provides the process adapters of the driver: the build
// command runner and the preprocessor front end.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the build command and waits for it to complete.
// It merges environments with the following priority (low to high):
// 1. os.Environ() without inherited discovery markers
// 2. env (the instrumented environment)
//
// PATH from env is prepended to the inherited PATH.
func (e *Executor) Execute(ctx context.Context, cmd domain.BuildCommand, env []string, stdout, stderr io.Writer) error {
	if len(cmd.Args) == 0 {
		return domain.ErrNoBuildCommand
	}

	name := cmd.Args[0]
	args := cmd.Args[1:]

	cmdEnv := ResolveEnvironment(os.Environ(), env)

	// Resolve the executable path using the new environment's PATH
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := LookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command

	// Restore the original command name in Args[0]
	if len(c.Args) > 0 {
		c.Args[0] = name
	}

	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Env = cmdEnv

	stdoutLog := &logWriter{logger: e.logger}
	stderrLog := &logWriter{logger: e.logger}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	c.Stdout = io.MultiWriter(stdoutLog, stdout)
	c.Stderr = io.MultiWriter(stderrLog, stderr)
	c.Stdin = os.Stdin

	if err := c.Run(); err != nil {
		// Capture exit code if possible
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// logWriter mirrors process output line by line into the debug log.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}

// ResolveEnvironment layers env over sysEnv. Discovery markers inherited from
// an enclosing build are dropped so the wrapped build starts fresh.
func ResolveEnvironment(sysEnv, env []string) []string {
	envMap := make(map[string]string)
	order := make([]string, 0, len(sysEnv)+len(env))

	set := func(k, v string) {
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range domain.WithoutEnv(sysEnv, domain.EnvSkipCompile, domain.EnvSkipLink) {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
