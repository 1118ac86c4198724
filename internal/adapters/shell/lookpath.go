package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/ccscope/internal/core/domain"
)

// LookPath searches for an executable in the directories named by the PATH
// entry of env. A PATH directory or candidate that resolves to one of exclude
// is skipped, so a shim directory and the shim executable never shadow the
// genuine tool. A file containing a separator is checked as is.
func LookPath(file string, env []string, exclude ...string) (string, error) {
	if strings.ContainsRune(file, filepath.Separator) {
		if err := findExecutable(file); err != nil {
			return "", err
		}
		return file, nil
	}

	path, _ := domain.LookupEnv(env, "PATH")
	if path == "" {
		return "", exec.ErrNotFound
	}

	excluded := canonicalSet(exclude)
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		if excluded[canonical(dir)] {
			continue
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err != nil {
			continue
		}
		if excluded[canonical(candidate)] {
			continue
		}
		return candidate, nil
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

func canonicalSet(paths []string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p != "" {
			set[canonical(p)] = true
		}
	}
	return set
}

// canonical resolves p as far as possible; unresolvable paths are only cleaned.
func canonical(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
