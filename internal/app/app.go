// Package app implements the application layer for ccscope.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"go.trai.ch/ccscope/internal/adapters/interpose" //nolint:depguard // Wired in app layer
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic of the driver.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	ledger       ports.Ledger
	targets      ports.TargetSet
	walker       ports.ArtifactWalker
	hasher       ports.Hasher
	shims        ports.ShimInstaller
	resolver     ports.PathResolver
	executable   func() (string, error)
	lookup       func(exclude ...string) interpose.Lookup
	wait         func(ctx context.Context, pid int) (int, error)
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	ledger ports.Ledger,
	targets ports.TargetSet,
	walker ports.ArtifactWalker,
	hasher ports.Hasher,
	shims ports.ShimInstaller,
	resolver ports.PathResolver,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		ledger:       ledger,
		targets:      targets,
		walker:       walker,
		hasher:       hasher,
		shims:        shims,
		resolver:     resolver,
		executable:   os.Executable,
		lookup:       nativeLookup,
		wait:         interpose.Wait,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithExecutable replaces the lookup of the executable the shims point at.
// This is primarily used for testing.
func (a *App) WithExecutable(fn func() (string, error)) *App {
	a.executable = fn
	return a
}

// WithLauncher replaces how a toolchain program named by path is spawned and
// awaited. This is primarily used for testing.
func (a *App) WithLauncher(
	lookup func(exclude ...string) interpose.Lookup,
	wait func(ctx context.Context, pid int) (int, error),
) *App {
	a.lookup = lookup
	a.wait = wait
	return a
}

// WithOutput sets the writers the wrapped build streams to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// BuildOptions configures a Build.
type BuildOptions struct {
	// Command is the build command. Empty reuses the saved command of the feature.
	Command []string
	// Dir is the directory the command runs in. Empty reuses the saved
	// directory of the feature, then the project root.
	Dir         string
	ProjectRoot string
	Feature     string
	Compiler    string
	Linker      string
	// LogLevel enables the shim log at the given level.
	LogLevel string
}

// QueryOptions selects the workspace a query reads.
type QueryOptions struct {
	ProjectRoot string
	Feature     string
}

// Build runs the build command under the shims and records what it compiles and links.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	// 1. Resolve the workspace
	settings, err := a.settings(opts.ProjectRoot, opts.Feature)
	if err != nil {
		return err
	}
	feature := featureOrDefault(opts.Feature)

	// 2. Load the saved configuration
	cfg, err := a.configLoader.Load(settings.ProjectRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	saved := cfg.Feature(feature)

	args, err := buildArgs(opts.Command, saved.BuildCmd)
	if err != nil {
		return err
	}

	dir := opts.Dir
	if dir == "" {
		dir = saved.BuildDir
	}
	if dir == "" {
		dir = settings.ProjectRoot
	}
	dir, err = a.resolver.Canonicalize("", dir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve build directory")
	}

	if opts.Compiler != "" {
		cfg.Compiler = opts.Compiler
	}
	if opts.Linker != "" {
		cfg.Linker = opts.Linker
	}
	settings.Classifier = domain.Classifier{CompilerOverride: cfg.Compiler, LinkerOverride: cfg.Linker}
	settings.LogLevel = opts.LogLevel

	// 3. Install the shims
	self, err := a.executable()
	if err != nil {
		return zerr.Wrap(err, "failed to locate executable")
	}
	if resolved, errEval := filepath.EvalSymlinks(self); errEval == nil {
		self = resolved
	}
	if err := a.shims.Install(settings.ShimDir, self, settings.Classifier.Names()); err != nil {
		return err
	}

	// 4. Run the build
	env := append(settings.Environ(), "PATH="+settings.ShimDir)
	a.logger.Info(fmt.Sprintf("building %s in %s", strings.Join(args, " "), dir))
	cmd := domain.BuildCommand{Args: withVerboseMake(args), Dir: dir}
	if err := a.launch(ctx, settings, cmd, env); err != nil {
		a.logger.Error(err)
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	// 5. Save the configuration
	cfg.SetFeature(feature, domain.FeatureConfig{BuildDir: dir, BuildCmd: joinCommand(args)})
	if err := a.configLoader.Save(settings.ProjectRoot, cfg); err != nil {
		return err
	}

	a.logSummary(settings)
	return nil
}

// Targets returns the recorded build targets of a workspace.
func (a *App) Targets(opts QueryOptions) ([]string, error) {
	settings, err := a.settings(opts.ProjectRoot, opts.Feature)
	if err != nil {
		return nil, err
	}
	return a.targets.List(settings.TargetsPath())
}

// CompileUnits returns the recorded compile units of a workspace, each once,
// in the order they were first recorded.
func (a *App) CompileUnits(opts QueryOptions) ([]domain.CompileUnit, error) {
	settings, err := a.settings(opts.ProjectRoot, opts.Feature)
	if err != nil {
		return nil, err
	}
	return a.compileUnits(settings)
}

func (a *App) compileUnits(settings domain.Settings) ([]domain.CompileUnit, error) {
	entries, err := a.ledger.Read(settings.LedgerPath())
	if err != nil {
		return nil, err
	}

	var units []domain.CompileUnit
	seen := make(map[string]bool)
	for _, entry := range entries {
		for _, unit := range entry.Units {
			key := a.hasher.ComputeUnitKey(unit)
			if seen[key] {
				continue
			}
			seen[key] = true
			units = append(units, unit)
		}
	}
	return units, nil
}

// PreprocessedFile is one artifact of the mirrored tree.
type PreprocessedFile struct {
	// Path is relative to the mirror root.
	Path string
	// Hash is the content hash, zero unless requested.
	Hash uint64
}

// PreprocessedFiles lists the mirrored preprocessed files of a workspace,
// optionally with their content hashes.
func (a *App) PreprocessedFiles(opts QueryOptions, withHash bool) ([]PreprocessedFile, error) {
	settings, err := a.settings(opts.ProjectRoot, opts.Feature)
	if err != nil {
		return nil, err
	}

	root := settings.MirrorRoot()
	paths, err := a.walker.Preprocessed(root)
	if err != nil {
		return nil, err
	}

	files := make([]PreprocessedFile, 0, len(paths))
	for _, p := range paths {
		f := PreprocessedFile{Path: p}
		if withHash {
			f.Hash, err = a.hasher.ComputeFileHash(filepath.Join(root, p))
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to hash preprocessed file"), "path", p)
			}
		}
		files = append(files, f)
	}
	return files, nil
}

// settings resolves the workspace of feature below projectRoot.
// An empty projectRoot means the current directory.
func (a *App) settings(projectRoot, feature string) (domain.Settings, error) {
	feature = featureOrDefault(feature)
	if err := domain.ValidateFeature(feature); err != nil {
		return domain.Settings{}, err
	}
	if projectRoot == "" {
		projectRoot = "."
	}
	root, err := a.resolver.Canonicalize("", projectRoot)
	if err != nil {
		return domain.Settings{}, errors.Join(domain.ErrFailedToGetRoot, err)
	}
	ws := domain.WorkspaceFor(root, feature)
	return domain.Settings{
		ProjectRoot:   root,
		WorkspaceRoot: ws,
		ShimDir:       filepath.Join(ws, domain.ShimDirName),
	}, nil
}

func (a *App) logSummary(settings domain.Settings) {
	units, err := a.compileUnits(settings)
	if err != nil {
		a.logger.Warn(err.Error())
	}
	targets, err := a.targets.List(settings.TargetsPath())
	if err != nil && !errors.Is(err, domain.ErrTargetsListNotFound) {
		a.logger.Warn(err.Error())
	}
	a.logger.Info(fmt.Sprintf("recorded %d compile units and %d targets in %s",
		len(units), len(targets), settings.WorkspaceRoot))
}

func featureOrDefault(feature string) string {
	if feature == "" {
		return domain.DefaultFeature
	}
	return feature
}

// buildArgs returns the command to run: the given one, else the saved one.
func buildArgs(command []string, saved string) ([]string, error) {
	if len(command) > 0 {
		return command, nil
	}
	if strings.TrimSpace(saved) == "" {
		return nil, domain.ErrNoBuildCommand
	}
	args, err := shlex.Split(saved)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to split saved build command"), "command", saved)
	}
	if len(args) == 0 {
		return nil, domain.ErrNoBuildCommand
	}
	return args, nil
}

// withVerboseMake appends VERBOSE=1 to make invocations that do not set VERBOSE,
// so generated makefiles echo the toolchain commands they run.
func withVerboseMake(args []string) []string {
	if filepath.Base(args[0]) != "make" {
		return args
	}
	for _, arg := range args[1:] {
		if strings.HasPrefix(arg, "VERBOSE=") {
			return args
		}
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args...)
	return append(out, "VERBOSE=1")
}

// joinCommand renders args so that shlex.Split restores them.
func joinCommand(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quote(arg)
	}
	return strings.Join(quoted, " ")
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\#") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}
