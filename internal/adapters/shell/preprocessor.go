package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// FrontEnd is the preprocessor driver used for every unit, whichever compiler
// the build itself runs, so all mirrored files share one dialect.
const FrontEnd = "clang"

var _ ports.Preprocessor = (*Preprocessor)(nil)

// Preprocessor implements ports.Preprocessor by running FrontEnd with -E -P.
type Preprocessor struct {
	logger  ports.Logger
	env     []string
	exclude []string
}

// NewPreprocessor creates a Preprocessor that runs with env. PATH entries and
// executables in exclude are never chosen as the front end.
func NewPreprocessor(logger ports.Logger, env []string, exclude ...string) *Preprocessor {
	return &Preprocessor{
		logger:  logger,
		env:     env,
		exclude: exclude,
	}
}

// Preprocess runs the front end synchronously in the unit's directory and
// writes its line-marker free output to dst.
//
// The child carries both discovery markers, so a shim reached through it
// records nothing. Its output is discarded.
func (p *Preprocessor) Preprocess(ctx context.Context, unit domain.CompileUnit, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return errors.Join(domain.ErrPreprocessFailed, zerr.With(zerr.Wrap(err, "failed to create mirror directory"), "path", dst))
	}

	executable, err := LookPath(FrontEnd, p.env, p.exclude...)
	if err != nil {
		return errors.Join(domain.ErrPreprocessFailed, zerr.With(zerr.Wrap(err, "front end not found"), "front_end", FrontEnd))
	}

	args := make([]string, 0, len(unit.Flags)+5)
	args = append(args, "-E", "-P")
	args = append(args, unit.Flags...)
	args = append(args, unit.Source, "-o", dst)

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // front end is resolved from PATH
	cmd.Args[0] = FrontEnd
	cmd.Dir = unit.Dir
	cmd.Env = domain.AllMarkers.Apply(p.env)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	p.logger.Debug("preprocessing " + unit.Source + " -> " + dst)
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "front end failed"), "source", unit.Source)
		return errors.Join(domain.ErrPreprocessFailed, zerr.With(err, "exit_code", exitCode))
	}
	return nil
}
