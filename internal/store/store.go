package store

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"contactrouter/internal/domain"
	"contactrouter/internal/logging"
	"contactrouter/internal/metrics"
	"contactrouter/internal/ports"
)

const (
	datasetBank = "bank"
	datasetSEBI = "sebi"
)

// Store publishes immutable reference snapshots. Readers see either no
// snapshot or a complete one; a load builds a new value and swaps it in
// only on success.
type Store struct {
	bankSrc ports.BankSource
	sebiSrc ports.SEBISource

	bank atomic.Pointer[domain.BankDataset]
	sebi atomic.Pointer[domain.SEBIDataset]

	// one in-flight load per dataset
	loads singleflight.Group
	log   *slog.Logger
}

func New(bank ports.BankSource, sebi ports.SEBISource) *Store {
	return &Store{bankSrc: bank, sebiSrc: sebi, log: logging.New("store")}
}

// Bank returns the published bank snapshot, loading it first if unset.
func (s *Store) Bank(ctx context.Context) (*domain.BankDataset, error) {
	if d := s.bank.Load(); d != nil {
		return d, nil
	}
	if err := s.loadBank(ctx, false); err != nil {
		return nil, domain.Unavailable("Could not load bank data", err)
	}
	return s.bank.Load(), nil
}

// SEBI returns the published SEBI snapshot, loading it first if unset.
func (s *Store) SEBI(ctx context.Context) (*domain.SEBIDataset, error) {
	if d := s.sebi.Load(); d != nil {
		return d, nil
	}
	if err := s.loadSEBI(ctx, false); err != nil {
		return nil, domain.Unavailable("SEBI data not loaded", err)
	}
	return s.sebi.Load(), nil
}

// Ensure loads whichever datasets are still unset, concurrently.
func (s *Store) Ensure(ctx context.Context) error {
	return s.load(ctx, false)
}

// Reload rebuilds both datasets. A dataset that fails keeps its previous
// snapshot; the returned error joins both failures.
func (s *Store) Reload(ctx context.Context) error {
	return s.load(ctx, true)
}

// Loaded reports whether both datasets are published.
func (s *Store) Loaded() bool {
	return s.bank.Load() != nil && s.sebi.Load() != nil
}

func (s *Store) Status() ports.Status {
	bank := s.bank.Load()
	return ports.Status{
		BankLoaded:   bank != nil,
		SEBILoaded:   s.sebi.Load() != nil,
		RoutingModel: bank != nil && bank.ModelArtifacts,
	}
}

func (s *Store) load(ctx context.Context, force bool) error {
	var bankErr, sebiErr error
	var g errgroup.Group
	g.Go(func() error {
		bankErr = s.loadBank(ctx, force)
		return nil
	})
	g.Go(func() error {
		sebiErr = s.loadSEBI(ctx, force)
		return nil
	})
	_ = g.Wait()
	return errors.Join(bankErr, sebiErr)
}

// loadBank runs at most one bank load at a time. Without force it is a
// no-op once a snapshot is published. The shared load does not observe
// the cancellation of the caller that started it.
func (s *Store) loadBank(ctx context.Context, force bool) error {
	ctx = context.WithoutCancel(ctx)
	_, err, _ := s.loads.Do(datasetBank, func() (any, error) {
		if !force && s.bank.Load() != nil {
			return nil, nil
		}
		s.log.Info("loading bank reference data")
		d, err := s.bankSrc.LoadBank(ctx)
		metrics.DatasetLoad(datasetBank, err)
		if err != nil {
			s.log.Warn("bank reference data load failed", "err", err)
			return nil, err
		}
		s.bank.Store(d)
		s.log.Info("bank reference data loaded",
			"entities", len(d.Entities), "organizations", len(d.Organizations), "routing_model", d.ModelArtifacts)
		return nil, nil
	})
	return err
}

func (s *Store) loadSEBI(ctx context.Context, force bool) error {
	ctx = context.WithoutCancel(ctx)
	_, err, _ := s.loads.Do(datasetSEBI, func() (any, error) {
		if !force && s.sebi.Load() != nil {
			return nil, nil
		}
		s.log.Info("loading SEBI reference data")
		d, err := s.sebiSrc.LoadSEBI(ctx)
		metrics.DatasetLoad(datasetSEBI, err)
		if err != nil {
			s.log.Warn("SEBI reference data load failed", "err", err)
			return nil, err
		}
		s.sebi.Store(d)
		s.log.Info("SEBI reference data loaded", "entities", len(d.Entities), "schema", d.Schema.String())
		return nil, nil
	})
	return err
}
