package ports

// ShimInstaller populates the directory that shadows toolchain programs.
//
//go:generate mockgen -source=shims.go -destination=mocks/mock_shims.go -package=mocks
type ShimInstaller interface {
	// Install makes every name in dir resolve to the executable target.
	Install(dir, target string, names []string) error
}

// ArtifactWalker lists artifacts of the mirrored tree.
type ArtifactWalker interface {
	// Preprocessed returns the preprocessed files below root, relative to root and sorted.
	Preprocessed(root string) ([]string, error)
}
