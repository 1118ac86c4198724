package ports

import "go.trai.ch/ccscope/internal/core/domain"

// Ledger is the shared append-only log of compile units.
//
//go:generate mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks
type Ledger interface {
	// Append writes entry to the ledger at path as one uninterrupted block.
	Append(path string, entry domain.LedgerEntry) error

	// Read returns every entry of the ledger at path.
	// A missing ledger yields no entries and no error.
	Read(path string) ([]domain.LedgerEntry, error)
}
