package ports

import (
	"context"

	"contactrouter/internal/domain"
)

// BankSource builds a complete bank snapshot or fails as a unit.
type BankSource interface {
	LoadBank(ctx context.Context) (*domain.BankDataset, error)
}

// SEBISource builds a complete SEBI snapshot or fails as a unit.
type SEBISource interface {
	LoadSEBI(ctx context.Context) (*domain.SEBIDataset, error)
}

// ReferenceStore hands out the published snapshots, loading lazily while unset.
type ReferenceStore interface {
	Bank(ctx context.Context) (*domain.BankDataset, error)
	SEBI(ctx context.Context) (*domain.SEBIDataset, error)
}
