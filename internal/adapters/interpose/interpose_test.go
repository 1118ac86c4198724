package interpose_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccscope/internal/adapters/interpose"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// recordingLookup hands out entries that record their calls.
type recordingLookup struct {
	lookups map[interpose.Op]int
	calls   []interpose.Call
	err     error
	result  int
}

func newRecordingLookup() *recordingLookup {
	return &recordingLookup{lookups: make(map[interpose.Op]int), result: 42}
}

func (r *recordingLookup) Lookup(op interpose.Op) (interpose.Entry, error) {
	r.lookups[op]++
	return func(call interpose.Call) (int, error) {
		r.calls = append(r.calls, call)
		return r.result, r.err
	}, nil
}

// markingObserver records invocations and marks the environment.
type markingObserver struct {
	seen []domain.ProcessInvocation
}

func (m *markingObserver) Observe(_ context.Context, inv *domain.ProcessInvocation) {
	m.seen = append(m.seen, *inv)
	inv.Env = domain.Markers{Compile: true}.Apply(inv.Env)
}

type panickingObserver struct{}

func (panickingObserver) Observe(_ context.Context, inv *domain.ProcessInvocation) {
	inv.Env = append(inv.Env, "HALF=done")
	panic("malformed input")
}

func TestInterposer_ObservesThenDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	lookup := newRecordingLookup()
	observer := &markingObserver{}
	i := interpose.New(lookup, observer, mockLogger)

	env := []string{"PATH=/usr/bin"}
	require.NoError(t, i.Execve(context.Background(), "/usr/bin/cc", []string{"cc", "-c", "a.c"}, env))

	require.Len(t, observer.seen, 1)
	assert.Equal(t, "/usr/bin/cc", observer.seen[0].Program)
	assert.Equal(t, []string{"-c", "a.c"}, observer.seen[0].Arguments())
	assert.NotEmpty(t, observer.seen[0].Dir)

	require.Len(t, lookup.calls, 1)
	call := lookup.calls[0]
	assert.Equal(t, "/usr/bin/cc", call.Path)
	assert.Equal(t, []string{"cc", "-c", "a.c"}, call.Argv)
	assert.Equal(t, []string{"PATH=/usr/bin", domain.EnvSkipCompile + "=1"}, call.Env)
	assert.Equal(t, []string{"PATH=/usr/bin"}, env, "caller environment is not mutated")
}

func TestInterposer_ExecUsesProcessEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	lookup := newRecordingLookup()
	i := interpose.New(lookup, &markingObserver{}, mockLogger).
		WithEnviron(func() []string { return []string{"FROM=process"} })

	require.NoError(t, i.Execv(context.Background(), "/bin/ar", []string{"ar", "rcs", "libx.a"}))
	require.NoError(t, i.Execvp(context.Background(), "ar", []string{"ar", "t", "libx.a"}))

	require.Len(t, lookup.calls, 2)
	for _, call := range lookup.calls {
		assert.Equal(t, "FROM=process", call.Env[0])
	}
	assert.Equal(t, "ar", lookup.calls[1].Path)
}

func TestInterposer_SpawnReturnsPid(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	lookup := newRecordingLookup()
	observer := &markingObserver{}
	i := interpose.New(lookup, observer, mockLogger)

	pid, err := i.Spawn(context.Background(), "/usr/bin/ld", []string{"ld", "-o", "app"}, nil, "/work")
	require.NoError(t, err)
	assert.Equal(t, 42, pid)
	assert.Equal(t, "/work", observer.seen[0].Dir)
	assert.Equal(t, "/work", lookup.calls[0].Dir)
}

func TestInterposer_ResolvesEachEntryOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	lookup := newRecordingLookup()
	i := interpose.New(lookup, &markingObserver{}, mockLogger)

	for range 3 {
		require.NoError(t, i.Execve(context.Background(), "/bin/true", []string{"true"}, nil))
	}
	_, err := i.Spawn(context.Background(), "/bin/true", []string{"true"}, nil, "")
	require.NoError(t, err)

	assert.Equal(t, 1, lookup.lookups[interpose.OpExecve])
	assert.Equal(t, 1, lookup.lookups[interpose.OpSpawn])
	assert.Zero(t, lookup.lookups[interpose.OpExecv])
}

func TestInterposer_LookupFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	lookupErr := errors.New("no genuine execve")
	calls := 0
	lookup := interpose.LookupFunc(func(interpose.Op) (interpose.Entry, error) {
		calls++
		return nil, lookupErr
	})
	observer := &markingObserver{}
	i := interpose.New(lookup, observer, mockLogger)

	err := i.Execve(context.Background(), "/bin/cc", []string{"cc"}, nil)
	require.ErrorIs(t, err, lookupErr)
	err = i.Execve(context.Background(), "/bin/cc", []string{"cc"}, nil)
	require.ErrorIs(t, err, lookupErr)

	assert.Equal(t, 1, calls, "a failed resolution is cached too")
	assert.Empty(t, observer.seen, "nothing is observed without a delegate")
}

func TestInterposer_DelegateErrorIsReturnedUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	lookup := newRecordingLookup()
	lookup.err = errors.New("exec format error")
	i := interpose.New(lookup, &markingObserver{}, mockLogger)

	err := i.Execve(context.Background(), "/bin/cc", []string{"cc"}, nil)
	require.ErrorIs(t, err, lookup.err)
}

func TestInterposer_ObserverPanicIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	lookup := newRecordingLookup()
	i := interpose.New(lookup, panickingObserver{}, mockLogger)

	env := []string{"A=1"}
	require.NoError(t, i.Execve(context.Background(), "/bin/cc", []string{"cc", "a.c"}, env))

	require.Len(t, lookup.calls, 1)
	assert.Equal(t, env, lookup.calls[0].Env, "a panicking observer leaves the environment untouched")
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "execv", interpose.OpExecv.String())
	assert.Equal(t, "execvp", interpose.OpExecvp.String())
	assert.Equal(t, "execve", interpose.OpExecve.String())
	assert.Equal(t, "posix_spawn", interpose.OpSpawn.String())
	assert.Equal(t, "op(9)", interpose.Op(9).String())
}
