package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccscope/internal/adapters/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o600))
}

func TestResolver_Canonicalize_Relative(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "src", "a.c"))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "build"), 0o750))

	resolver := fs.NewResolver()

	got, err := resolver.Canonicalize(filepath.Join(tmpDir, "build"), "../src/./a.c")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmpDir, "src", "a.c"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolver_Canonicalize_Symlink(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "real", "a.c"))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "real"), filepath.Join(tmpDir, "alias")))

	resolver := fs.NewResolver()

	got, err := resolver.Canonicalize(tmpDir, "alias/a.c")
	require.NoError(t, err)
	assert.Equal(t, "a.c", filepath.Base(got))
	assert.Equal(t, "real", filepath.Base(filepath.Dir(got)))
}

func TestResolver_Canonicalize_DotDotAfterSymlink(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "repo", "a.c"))
	writeFile(t, filepath.Join(tmpDir, "outside", "a.c"))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "outside", "x"), 0o750))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "outside", "x"), filepath.Join(tmpDir, "repo", "link")))

	resolver := fs.NewResolver()

	got, err := resolver.Canonicalize(filepath.Join(tmpDir, "repo"), "link/../a.c")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmpDir, "outside", "a.c"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolver_Canonicalize_Missing(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.Canonicalize(t.TempDir(), "missing.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve path")
}

func TestResolver_InScope(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "p")
	writeFile(t, filepath.Join(root, "x.c"))
	writeFile(t, filepath.Join(tmpDir, "proj", "x.c"))
	writeFile(t, filepath.Join(tmpDir, "q", "x.c"))
	writeFile(t, filepath.Join(tmpDir, "outside", "x.c"))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "outside", "sub"), 0o750))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "outside", "sub"), filepath.Join(root, "link")))

	resolver := fs.NewResolver()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "inside root", path: filepath.Join(root, "x.c"), want: true},
		{name: "sibling sharing prefix", path: filepath.Join(tmpDir, "proj", "x.c"), want: false},
		{name: "escapes through dot-dot", path: root + "/../q/x.c", want: false},
		{name: "dot-dot after symlink leaves root", path: filepath.Join(root, "link") + "/../x.c", want: false},
		{name: "nonexistent", path: filepath.Join(root, "missing.c"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.InScope(root, tt.path))
		})
	}
}

func TestResolver_InScope_MissingRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "x.c"))

	resolver := fs.NewResolver()
	assert.False(t, resolver.InScope(filepath.Join(tmpDir, "gone"), filepath.Join(tmpDir, "x.c")))
}

func TestResolver_Readable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.c")
	writeFile(t, path)

	resolver := fs.NewResolver()
	assert.True(t, resolver.Readable(path))
	assert.False(t, resolver.Readable(filepath.Join(tmpDir, "b.c")))
}

func TestContains(t *testing.T) {
	assert.True(t, fs.Contains("/p", "/p/x.c"))
	assert.True(t, fs.Contains("/p", "/p"))
	assert.True(t, fs.Contains("/", "/x.c"))
	assert.False(t, fs.Contains("/p", "/proj/x.c"))
	assert.False(t, fs.Contains("/p", "/q/x.c"))
}
