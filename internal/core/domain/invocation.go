package domain

import (
	"path/filepath"
	"strings"
)

// PreprocessedSuffix replaces SourceSuffix on mirrored preprocessor output.
const PreprocessedSuffix = ".i"

// ObjectSuffix is the suffix of relocatable object files.
const ObjectSuffix = ".o"

// StaticLibrarySuffix is the suffix of static library archives.
const StaticLibrarySuffix = ".a"

// LibraryPrefix is the conventional prefix of library base names.
const LibraryPrefix = "lib"

// ProcessInvocation is one intercepted process launch.
type ProcessInvocation struct {
	// Program is the path or name the process was launched with.
	Program string
	// Args is the full argument vector, Args[0] included.
	Args []string
	// Dir is the working directory of the launch.
	Dir string
	// Env is the environment handed to the launched process.
	Env []string
}

// Arguments returns the arguments without the program name.
func (p *ProcessInvocation) Arguments() []string {
	if len(p.Args) == 0 {
		return nil
	}
	return p.Args[1:]
}

// CompileUnit is one source file together with the flags shaping its preprocessed form.
type CompileUnit struct {
	Source string
	Flags  []string
	Dir    string
}

// TargetKind is the inferred kind of a build target.
type TargetKind int

const (
	// KindUnknown is a binary with an unrecognised suffix.
	KindUnknown TargetKind = iota
	// KindStaticLibrary is a .a archive.
	KindStaticLibrary
	// KindSharedLibrary is a .so or versioned .so.N object.
	KindSharedLibrary
	// KindExecutable is an output without any suffix.
	KindExecutable
)

// String returns a human-readable name for the kind.
func (k TargetKind) String() string {
	switch k {
	case KindStaticLibrary:
		return "static library"
	case KindSharedLibrary:
		return "shared library"
	case KindExecutable:
		return "executable"
	default:
		return "unknown"
	}
}

// BuildTarget is a final artifact identified by its base name.
type BuildTarget struct {
	Name string
	Kind TargetKind
}

// NewBuildTarget returns the target for path, keyed by base name.
// ok is false for non-binary outputs such as objects and preprocessed files.
func NewBuildTarget(path string) (BuildTarget, bool) {
	kind, ok := ClassifyOutput(path)
	if !ok {
		return BuildTarget{}, false
	}
	return BuildTarget{Name: filepath.Base(path), Kind: kind}, true
}

// ClassifyOutput infers the target kind of an output path.
func ClassifyOutput(path string) (TargetKind, bool) {
	name := filepath.Base(path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return KindUnknown, false
	}
	switch {
	case strings.HasSuffix(name, ObjectSuffix), strings.HasSuffix(name, PreprocessedSuffix):
		return KindUnknown, false
	case strings.HasSuffix(name, StaticLibrarySuffix):
		return KindStaticLibrary, true
	case isSharedLibrary(name):
		return KindSharedLibrary, true
	case !strings.Contains(name, "."):
		return KindExecutable, true
	}
	return KindUnknown, true
}

// HasLibraryPrefix reports whether the base name of path starts with LibraryPrefix.
func HasLibraryPrefix(path string) bool {
	return strings.HasPrefix(filepath.Base(path), LibraryPrefix)
}

// IsStaticLibrary reports whether path names a lib*.a archive.
func IsStaticLibrary(path string) bool {
	return strings.HasSuffix(path, StaticLibrarySuffix) && HasLibraryPrefix(path)
}

func isSharedLibrary(name string) bool {
	if strings.HasSuffix(name, ".so") {
		return true
	}
	idx := strings.LastIndex(name, ".so.")
	if idx < 0 {
		return false
	}
	version := name[idx+len(".so."):]
	if version == "" {
		return false
	}
	for _, part := range strings.Split(version, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
