package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Environment variables read by the shim.
const (
	EnvProjectRoot = "CCSCOPE_PROJECT_ROOT"
	EnvFeatureRoot = "CCSCOPE_FEATURE_ROOT"
	EnvCompiler    = "CCSCOPE_CC"
	EnvLinker      = "CCSCOPE_LD"
	EnvSkipCompile = "CCSCOPE_SKIP_COMPILE"
	EnvSkipLink    = "CCSCOPE_SKIP_LINK"
	EnvShimDir     = "CCSCOPE_SHIM_DIR"
	EnvLogLevel    = "CCSCOPE_LOG_LEVEL"
)

// Workspace layout below the feature root.
const (
	MirrorDirName   = "c"
	ShimDirName     = "bin"
	LedgerFileName  = "compile_entries.log"
	TargetsFileName = "targets.list"
	ShimLogFileName = "shim.log"
	StateDirName    = ".ccscope"
	DefaultFeature  = "default"
)

// Settings is the shim configuration of one process.
//
// ProjectRoot and WorkspaceRoot are expected to be canonical absolute paths;
// the driver exports them that way.
type Settings struct {
	ProjectRoot   string
	WorkspaceRoot string
	ShimDir       string
	LogLevel      string
	Classifier    Classifier
}

// SettingsFromEnv reads Settings from env.
func SettingsFromEnv(env []string) Settings {
	get := func(key string) string {
		v, _ := LookupEnv(env, key)
		return v
	}
	return Settings{
		ProjectRoot:   get(EnvProjectRoot),
		WorkspaceRoot: get(EnvFeatureRoot),
		ShimDir:       get(EnvShimDir),
		LogLevel:      get(EnvLogLevel),
		Classifier: Classifier{
			CompilerOverride: get(EnvCompiler),
			LinkerOverride:   get(EnvLinker),
		},
	}
}

// Enabled reports whether recording is switched on.
func (s Settings) Enabled() bool {
	return s.ProjectRoot != "" && s.WorkspaceRoot != ""
}

// Environ renders s as KEY=VALUE assignments. Empty values are omitted.
func (s Settings) Environ() []string {
	var env []string
	add := func(k, v string) {
		if v != "" {
			env = append(env, k+"="+v)
		}
	}
	add(EnvProjectRoot, s.ProjectRoot)
	add(EnvFeatureRoot, s.WorkspaceRoot)
	add(EnvShimDir, s.ShimDir)
	add(EnvLogLevel, s.LogLevel)
	add(EnvCompiler, s.Classifier.CompilerOverride)
	add(EnvLinker, s.Classifier.LinkerOverride)
	return env
}

// Keys lists every variable Environ may set.
func (s Settings) Keys() []string {
	return []string{EnvProjectRoot, EnvFeatureRoot, EnvShimDir, EnvLogLevel, EnvCompiler, EnvLinker}
}

// MirrorRoot is the root of the mirrored preprocessed tree.
func (s Settings) MirrorRoot() string {
	return filepath.Join(s.WorkspaceRoot, MirrorDirName)
}

// LedgerPath is the compile-unit ledger file.
func (s Settings) LedgerPath() string {
	return filepath.Join(s.MirrorRoot(), LedgerFileName)
}

// TargetsPath is the target set file.
func (s Settings) TargetsPath() string {
	return filepath.Join(s.MirrorRoot(), TargetsFileName)
}

// ShimLogPath is where the shim writes its log when logging is enabled.
func (s Settings) ShimLogPath() string {
	return filepath.Join(s.WorkspaceRoot, ShimLogFileName)
}

// MirrorPath maps a canonical source path inside the project root to its
// preprocessed artifact below MirrorRoot.
func (s Settings) MirrorPath(source string) (string, error) {
	rel, err := filepath.Rel(s.ProjectRoot, source)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(ErrOutsideProjectRoot, "path", source)
	}
	rel = strings.TrimSuffix(rel, SourceSuffix) + PreprocessedSuffix
	return filepath.Join(s.MirrorRoot(), rel), nil
}

// WorkspaceFor returns the feature root of feature below projectRoot.
func WorkspaceFor(projectRoot, feature string) string {
	if feature == "" {
		feature = DefaultFeature
	}
	return filepath.Join(projectRoot, StateDirName, feature)
}
