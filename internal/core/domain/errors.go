package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildExecutionFailed is returned when the wrapped build command fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrNoBuildCommand is returned when no build command was given and none is saved for the feature.
	ErrNoBuildCommand = zerr.New("no build command specified")

	// ErrOutsideProjectRoot is returned when a path does not reside inside the project root.
	ErrOutsideProjectRoot = zerr.New("path is outside the project root")

	// ErrGenuineNotFound is returned when the genuine implementation of an intercepted program cannot be found.
	ErrGenuineNotFound = zerr.New("genuine executable not found")

	// ErrUnknownEntryPoint is returned when a process-creation entry point has no genuine implementation.
	ErrUnknownEntryPoint = zerr.New("unknown process-creation entry point")

	// ErrConfigReadFailed is returned when the project config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the project config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrLedgerWriteFailed is returned when a ledger entry cannot be appended.
	ErrLedgerWriteFailed = zerr.New("failed to append ledger entry")

	// ErrLedgerReadFailed is returned when the ledger cannot be read.
	ErrLedgerReadFailed = zerr.New("failed to read ledger")

	// ErrTargetSetWriteFailed is returned when the target set cannot be updated.
	ErrTargetSetWriteFailed = zerr.New("failed to update target set")

	// ErrTargetSetReadFailed is returned when the target set cannot be read.
	ErrTargetSetReadFailed = zerr.New("failed to read target set")

	// ErrTargetsListNotFound is returned when no target set exists for the feature.
	ErrTargetsListNotFound = zerr.New("targets list not found")

	// ErrLockFailed is returned when an exclusive file lock cannot be acquired.
	ErrLockFailed = zerr.New("failed to lock file")

	// ErrPreprocessFailed is returned when the external preprocessor fails.
	ErrPreprocessFailed = zerr.New("preprocessing failed")

	// ErrShimInstallFailed is returned when the shim directory cannot be populated.
	ErrShimInstallFailed = zerr.New("failed to install toolchain shims")

	// ErrInvalidFeature is returned when a feature name cannot be used as a directory name.
	ErrInvalidFeature = zerr.New("invalid feature name")

	// ErrFailedToGetRoot is returned when the project root path cannot be resolved.
	ErrFailedToGetRoot = zerr.New("failed to resolve project root")
)
