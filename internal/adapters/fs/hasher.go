package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for compile units and mirrored files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeUnitKey computes the identity of a compile unit: its source, its
// working directory and its flags in order.
func (h *Hasher) ComputeUnitKey(unit domain.CompileUnit) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(unit.Source)
	_, _ = hasher.Write([]byte{0}) // Separator
	_, _ = hasher.WriteString(unit.Dir)
	_, _ = hasher.Write([]byte{0})

	for _, flag := range unit.Flags {
		_, _ = hasher.WriteString(flag)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	return fmt.Sprintf("%016x", hasher.Sum64())
}
