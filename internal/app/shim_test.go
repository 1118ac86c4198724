package app_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccscope/internal/adapters/interpose"
	"go.trai.ch/ccscope/internal/adapters/logger"
	"go.trai.ch/ccscope/internal/app"
	"go.trai.ch/ccscope/internal/core/domain"
)

type recordingObserver struct {
	programs []string
}

func (o *recordingObserver) Observe(_ context.Context, inv *domain.ProcessInvocation) {
	o.programs = append(o.programs, inv.Program)
}

func failingLookup(err error) interpose.Lookup {
	return interpose.LookupFunc(func(interpose.Op) (interpose.Entry, error) {
		return func(interpose.Call) (int, error) { return -1, err }, nil
	})
}

func TestShim_Run_ExitStatuses(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"genuine not found", domain.ErrGenuineNotFound, app.ExitNotFound, "gcc: command not found\n"},
		{"missing file", &os.PathError{Op: "exec", Path: "/x/gcc", Err: fs.ErrNotExist}, app.ExitNotFound, "gcc: command not found\n"},
		{"permission denied", errors.New("permission denied"), app.ExitCannotExecute, "gcc: permission denied\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observer := &recordingObserver{}
			stderr := new(bytes.Buffer)
			interposer := interpose.New(failingLookup(tt.err), observer, logger.Discard()).
				WithEnviron(func() []string { return nil })

			code := app.NewShim(interposer, logger.Discard(), stderr).
				Run(context.Background(), []string{"/ws/bin/gcc", "-c", "a.c"})

			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, stderr.String())
			assert.Equal(t, []string{"gcc"}, observer.programs)
		})
	}
}

func TestShim_Run_EmptyArgv(t *testing.T) {
	stderr := new(bytes.Buffer)
	interposer := interpose.New(failingLookup(nil), &recordingObserver{}, logger.Discard())

	code := app.NewShim(interposer, logger.Discard(), stderr).Run(context.Background(), nil)
	assert.Equal(t, app.ExitCannotExecute, code)
}

func TestNewShimFromEnv_DisabledLeavesNoLog(t *testing.T) {
	dir := t.TempDir()
	shimDir := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(shimDir, 0o750))

	env := []string{
		"PATH=" + shimDir,
		domain.EnvShimDir + "=" + shimDir,
		domain.EnvLogLevel + "=debug",
	}
	shim := app.NewShimFromEnv(env, nil, nil, nil)

	// The only PATH entry is the shim directory, so nothing genuine is found.
	code := shim.Run(context.Background(), []string{"cc", "-c", "a.c"})
	assert.Equal(t, app.ExitNotFound, code)

	_, err := os.Stat(domain.ShimLogFileName)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewPassthroughShim_NotFound(t *testing.T) {
	env := []string{"PATH=" + t.TempDir()}
	code := app.NewPassthroughShim(env).Run(context.Background(), []string{"ld", "-o", "x"})
	assert.Equal(t, app.ExitNotFound, code)
}
