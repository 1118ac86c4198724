package ports

// PathResolver canonicalizes paths and tests project containment.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type PathResolver interface {
	// Canonicalize resolves path against dir and returns its absolute form
	// with symlinks, "." and ".." resolved. It fails for nonexistent paths.
	Canonicalize(dir, path string) (string, error)

	// InScope reports whether path resides strictly inside root.
	// Any resolution failure yields false.
	InScope(root, path string) bool

	// Readable reports whether path can be opened for reading.
	Readable(path string) bool
}
