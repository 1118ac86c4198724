package domain

import "strings"

// Markers records which discovery actions already ran higher up the process tree.
//
// They travel through the environment: every process launched after a
// discovery action inherits them, so nested toolchain invocations of the same
// build step do not repeat the work.
type Markers struct {
	Compile bool
	Link    bool
}

// AllMarkers has every discovery action marked as done.
var AllMarkers = Markers{Compile: true, Link: true}

// MarkersFromEnv reads the markers from env. Presence of a variable sets its marker.
func MarkersFromEnv(env []string) Markers {
	return Markers{
		Compile: hasEnv(env, EnvSkipCompile),
		Link:    hasEnv(env, EnvSkipLink),
	}
}

// Apply returns a copy of env carrying m. env itself is left untouched.
func (m Markers) Apply(env []string) []string {
	out := make([]string, 0, len(env)+2)
	out = append(out, env...)
	if m.Compile && !hasEnv(env, EnvSkipCompile) {
		out = append(out, EnvSkipCompile+"=1")
	}
	if m.Link && !hasEnv(env, EnvSkipLink) {
		out = append(out, EnvSkipLink+"=1")
	}
	return out
}

// Without returns a copy of env with both markers removed.
func (m Markers) Without(env []string) []string {
	return WithoutEnv(env, EnvSkipCompile, EnvSkipLink)
}

// LookupEnv returns the value of key in env. The last assignment wins.
func LookupEnv(env []string, key string) (string, bool) {
	prefix := key + "="
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], prefix) {
			return env[i][len(prefix):], true
		}
	}
	return "", false
}

// WithoutEnv returns a copy of env with every assignment to keys removed.
func WithoutEnv(env []string, keys ...string) []string {
	out := make([]string, 0, len(env))
	for _, kv := range env {
		name, _, _ := strings.Cut(kv, "=")
		drop := false
		for _, k := range keys {
			if name == k {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, kv)
		}
	}
	return out
}

func hasEnv(env []string, key string) bool {
	_, ok := LookupEnv(env, key)
	return ok
}
