package ports

import (
	"context"

	"go.trai.ch/ccscope/internal/core/domain"
)

// Preprocessor produces the preprocessed form of a compile unit.
//
//go:generate mockgen -source=preprocessor.go -destination=mocks/mock_preprocessor.go -package=mocks
type Preprocessor interface {
	// Preprocess writes the line-marker free preprocessor output of unit to dst,
	// creating the parent directories of dst as needed.
	Preprocess(ctx context.Context, unit domain.CompileUnit, dst string) error
}
