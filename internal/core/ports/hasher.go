package ports

import "go.trai.ch/ccscope/internal/core/domain"

// Hasher computes content and identity hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the hash of the file's content.
	ComputeFileHash(path string) (uint64, error)

	// ComputeUnitKey returns a stable identity for a compile unit.
	ComputeUnitKey(unit domain.CompileUnit) string
}
