package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ccscope/internal/core/domain"
)

func TestClassifyOutput(t *testing.T) {
	tests := []struct {
		path string
		kind domain.TargetKind
		ok   bool
	}{
		{"build/app", domain.KindExecutable, true},
		{"libfoo.a", domain.KindStaticLibrary, true},
		{"out/libfoo.so", domain.KindSharedLibrary, true},
		{"libfoo.so.1", domain.KindSharedLibrary, true},
		{"libfoo.so.1.2.3", domain.KindSharedLibrary, true},
		{"libfoo.so.x", domain.KindUnknown, true},
		{"tool.exe", domain.KindUnknown, true},
		{"a.o", domain.KindUnknown, false},
		{"a.i", domain.KindUnknown, false},
		{"/", domain.KindUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := domain.ClassifyOutput(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestNewBuildTarget_UsesBaseName(t *testing.T) {
	target, ok := domain.NewBuildTarget("/repo/build/libfoo.a")
	assert.True(t, ok)
	assert.Equal(t, domain.BuildTarget{Name: "libfoo.a", Kind: domain.KindStaticLibrary}, target)
	assert.Equal(t, "static library", target.Kind.String())
}

func TestIsStaticLibrary(t *testing.T) {
	assert.True(t, domain.IsStaticLibrary("/repo/lib/libq.a"))
	assert.False(t, domain.IsStaticLibrary("/repo/lib/q.a"))
	assert.False(t, domain.IsStaticLibrary("/repo/lib/libq.so"))
}

func TestProcessInvocation_Arguments(t *testing.T) {
	assert.Nil(t, (&domain.ProcessInvocation{}).Arguments())
	inv := &domain.ProcessInvocation{Args: []string{"cc", "-c", "a.c"}}
	assert.Equal(t, []string{"-c", "a.c"}, inv.Arguments())
}
