package worker

// lowstock_cron.go
// Background goroutine that periodically sweeps the whole catalog for
// low-stock products and enqueues an alert job for anything the
// sale-path checks missed (stock adjustments, restores, manual edits).
// Skips the sweep while the SMTP circuit breaker is open.

import (
	"context"
	"time"

	"github.com/mohamm188/Trend-phone/internal/infra"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const sweepInterval = 1 * time.Hour

// LowStockCronConfig holds all dependencies for the sweep goroutine.
type LowStockCronConfig struct {
	Products   repository.ProductRepository
	Dispatcher *Dispatcher
	CB         *infra.CircuitBreaker
}

// StartLowStockCron launches a background goroutine that ticks hourly,
// queries low-stock products, and enqueues one alert job for the batch.
// It respects the context for graceful shutdown.
func StartLowStockCron(ctx context.Context, cfg LowStockCronConfig) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		log.Info().Msg("lowstock_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("lowstock_cron: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg LowStockCronConfig) {
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("lowstock_cron: circuit breaker is open, skipping sweep")
		return
	}

	products, err := cfg.Products.LowStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lowstock_cron: failed to query low stock")
		return
	}
	if len(products) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	if err := cfg.Dispatcher.EnqueueLowStockCheck(ctx, ids); err != nil {
		log.Error().Err(err).Msg("lowstock_cron: failed to enqueue alert job")
		return
	}
	log.Info().Int("products", len(ids)).Msg("lowstock_cron: alert job enqueued")
}
