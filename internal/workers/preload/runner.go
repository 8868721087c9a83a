package preload

import (
	"context"
	"log/slog"
	"time"

	"contactrouter/internal/logging"
)

// Loader is the part of the reference store the preloader drives.
type Loader interface {
	Ensure(ctx context.Context) error
	Loaded() bool
}

// Run loads the reference datasets in the background and retries on every
// tick until both are published or ctx ends. Request-time lazy loading
// still covers anything the preloader has not reached yet. done is closed
// when Run returns.
func Run(ctx context.Context, store Loader, interval time.Duration) (done <-chan struct{}) {
	ch := make(chan struct{})
	log := logging.New("preload")
	go func() {
		defer close(ch)
		if attempt(ctx, store, log) {
			log.Info("reference data preloaded")
			return
		}
		if interval <= 0 {
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if attempt(ctx, store, log) {
					log.Info("reference data preloaded")
					return
				}
			}
		}
	}()
	return ch
}

func attempt(ctx context.Context, store Loader, log *slog.Logger) bool {
	if err := store.Ensure(ctx); err != nil {
		log.Warn("reference data not ready, will retry", "err", err)
	}
	return store.Loaded()
}
