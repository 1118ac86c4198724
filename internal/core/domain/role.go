package domain

import "path/filepath"

// Role is the part a program plays in a C toolchain.
type Role int

const (
	// RoleNone marks a program that is not instrumented.
	RoleNone Role = iota
	// RoleCompiler marks a compiler driver (gcc, clang, cc).
	RoleCompiler
	// RoleLinker marks a dedicated linker (ld and friends).
	RoleLinker
	// RoleArchiver marks the static library archiver.
	RoleArchiver
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleCompiler:
		return "compiler"
	case RoleLinker:
		return "linker"
	case RoleArchiver:
		return "archiver"
	default:
		return "none"
	}
}

var (
	defaultCompilers = []string{"gcc", "clang", "cc"}
	defaultLinkers   = []string{"ld", "lld", "ld.gold", "ld.bfd"}
	defaultArchivers = []string{"ar"}
)

// Classifier decides the Role of a program from its base name.
//
// A non-empty override is the only name recognised for its role; an empty one
// falls back to the built-in name set.
type Classifier struct {
	CompilerOverride string
	LinkerOverride   string
}

// Classify returns the role of program. Any directory prefix is ignored.
func (c Classifier) Classify(program string) Role {
	name := filepath.Base(program)
	switch {
	case matches(name, c.CompilerOverride, defaultCompilers):
		return RoleCompiler
	case matches(name, c.LinkerOverride, defaultLinkers):
		return RoleLinker
	case matches(name, "", defaultArchivers):
		return RoleArchiver
	}
	return RoleNone
}

// Names returns every program name that classifies to a role other than RoleNone.
func (c Classifier) Names() []string {
	var names []string
	names = append(names, pick(c.CompilerOverride, defaultCompilers)...)
	names = append(names, pick(c.LinkerOverride, defaultLinkers)...)
	names = append(names, defaultArchivers...)
	return names
}

func matches(name, override string, defaults []string) bool {
	for _, n := range pick(override, defaults) {
		if n == name {
			return true
		}
	}
	return false
}

func pick(override string, defaults []string) []string {
	if override != "" {
		return []string{override}
	}
	return defaults
}
