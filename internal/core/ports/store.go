package ports

// TargetSet is the shared, deduplicated set of build target names.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TargetSet interface {
	// Merge adds every name not yet present to the set at path.
	Merge(path string, names []string) error

	// List returns the names recorded at path in insertion order.
	List(path string) ([]string, error)
}
