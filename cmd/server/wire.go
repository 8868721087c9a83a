package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"contactrouter/internal/adapters/files"
	"contactrouter/internal/adapters/objectstore"
	pg "contactrouter/internal/adapters/postgres"
	"contactrouter/internal/config"
	"contactrouter/internal/logging"
	"contactrouter/internal/ports"
	"contactrouter/internal/store"
)

// setup loads configuration and installs the default logger. A soft
// configuration error is logged and the loaded values are still used.
func setup() config.Config {
	cfg, err := config.Load()
	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	if err != nil {
		slog.Warn("configuration", "err", err)
	}
	return cfg
}

// openStore builds the reference store over the configured source. The
// returned func releases whatever the source holds open.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, func(), error) {
	var (
		bank    ports.BankSource
		sebi    ports.SEBISource
		release = func() {}
	)
	switch cfg.ReferenceSource {
	case config.SourcePostgres:
		db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.PoolOptions{
			MaxConns:          int32(cfg.DBMaxConns),
			HealthCheckPeriod: 30 * time.Second,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		src := pg.NewSource(db)
		bank, sebi, release = src, src, db.Close
	case config.SourceS3:
		src, err := objectstore.New(objectstore.Options{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Prefix:    cfg.S3.Prefix,
			UseSSL:    cfg.S3.UseSSL,
			CacheDir:  cfg.S3.CacheDir,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("object store: %w", err)
		}
		bank, sebi = src, src
	default:
		src := fileSource(cfg)
		bank, sebi = src, src
	}
	return store.New(bank, sebi), release, nil
}

func fileSource(cfg config.Config) *files.Source {
	return files.New(files.Options{
		DataDir:  cfg.DataDir,
		ModelDir: cfg.ModelDir,
		SEBIFile: cfg.SEBIDataFile,
	})
}
