package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ccscope/internal/core/domain"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.ParsedArgs
	}{
		{
			name: "compile only",
			args: []string{"-Iinc", "-DFOO=1", "-c", "src/a.c", "-o", "build/a.o"},
			want: domain.ParsedArgs{
				Flags:       []string{"-Iinc", "-DFOO=1"},
				Sources:     []string{"src/a.c"},
				Operands:    []string{"src/a.c"},
				Output:      "build/a.o",
				CompileOnly: true,
			},
		},
		{
			name: "separate flag values",
			args: []string{"-I", "inc", "-D", "X", "-U", "Y", "-include", "cfg.h", "a.c"},
			want: domain.ParsedArgs{
				Flags:    []string{"-I", "inc", "-D", "X", "-U", "Y", "-include", "cfg.h"},
				Sources:  []string{"a.c"},
				Operands: []string{"a.c"},
			},
		},
		{
			name: "std and fused include",
			args: []string{"-std=c11", "-includeconfig.h", "-O2", "-Wall", "-c", "x.c"},
			want: domain.ParsedArgs{
				Flags:       []string{"-std=c11", "-includeconfig.h"},
				Sources:     []string{"x.c"},
				Operands:    []string{"x.c"},
				CompileOnly: true,
			},
		},
		{
			name: "link",
			args: []string{"build/a.o", "build/b.o", "-o", "build/app"},
			want: domain.ParsedArgs{
				Operands: []string{"build/a.o", "build/b.o"},
				Output:   "build/app",
			},
		},
		{
			name: "fused output",
			args: []string{"main.o", "-oprog"},
			want: domain.ParsedArgs{
				Operands: []string{"main.o"},
				Output:   "prog",
			},
		},
		{
			name: "dangling paired flag",
			args: []string{"a.c", "-I"},
			want: domain.ParsedArgs{
				Sources:  []string{"a.c"},
				Operands: []string{"a.c"},
			},
		},
		{
			name: "dangling output",
			args: []string{"a.c", "-o"},
			want: domain.ParsedArgs{
				Sources:  []string{"a.c"},
				Operands: []string{"a.c"},
			},
		},
		{
			name: "include path variants",
			args: []string{"-isystem", "sys", "-iquotequote", "-idirafter", "late", "-imacros", "m.h", "-c", "a.c"},
			want: domain.ParsedArgs{
				Flags:       []string{"-isystem", "sys", "-iquotequote", "-idirafter", "late", "-imacros", "m.h"},
				Sources:     []string{"a.c"},
				Operands:    []string{"a.c"},
				CompileOnly: true,
			},
		},
		{
			name: "values of other flags are not operands",
			args: []string{"-MF", "deps/a.c", "-MT", "obj", "-x", "c", "-L", "lib", "-Xlinker", "gen.c", "-c", "a.c"},
			want: domain.ParsedArgs{
				Sources:     []string{"a.c"},
				Operands:    []string{"a.c"},
				CompileOnly: true,
			},
		},
		{
			name: "dangling value flag",
			args: []string{"a.c", "-MF"},
			want: domain.ParsedArgs{
				Sources:  []string{"a.c"},
				Operands: []string{"a.c"},
			},
		},
		{
			name: "flag values are not sources",
			args: []string{"-include", "gen.c", "-E", "real.c"},
			want: domain.ParsedArgs{
				Flags:       []string{"-include", "gen.c"},
				Sources:     []string{"real.c"},
				Operands:    []string{"real.c"},
				CompileOnly: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseArgs(tt.args)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, !tt.want.CompileOnly, got.ActsAsLinker())
		})
	}
}

func TestParseArgs_BareDashIsNotAFlagPair(t *testing.T) {
	got := domain.ParseArgs([]string{"-", "c", "-c"})
	assert.Empty(t, got.Flags)
	assert.Equal(t, []string{"c"}, got.Operands)
	assert.Empty(t, got.Sources)
}
