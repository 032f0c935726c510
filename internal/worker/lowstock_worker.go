package worker

// lowstock_worker.go
// Processes low-stock checks from QueueLowStock. For each product touched
// by a sale, re-reads the current stock level and emails an alert when it
// sits at or below the minimum. Negative stock (possible under the
// "allow" stock policy) always alerts.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mohamm188/Trend-phone/internal/infra"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// notifiedTTL suppresses repeat alerts for the same product.
	notifiedTTL     = 24 * time.Hour
	notifiedPrefix  = "lowstock:notified:"
	maxSendAttempts = 3
)

// LowStockJobPayload is the job envelope sent to QueueLowStock.
type LowStockJobPayload struct {
	ProductIDs []string `json:"product_ids"`
}

type LowStockWorker struct {
	products   repository.ProductRepository
	mailer     *infra.Mailer
	rdb        *redis.Client
	alertEmail string
}

func NewLowStockWorker(products repository.ProductRepository, mailer *infra.Mailer, rdb *redis.Client, alertEmail string) *LowStockWorker {
	return &LowStockWorker{
		products:   products,
		mailer:     mailer,
		rdb:        rdb,
		alertEmail: alertEmail,
	}
}

// Process re-checks every product in the payload and sends one alert
// email covering all that are low. The SMTP send goes through the
// circuit breaker; after the retries are exhausted the job lands in the
// DLQ instead of being lost.
func (w *LowStockWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload LowStockJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("lowstock_worker: invalid payload")
		return
	}
	if w.alertEmail == "" {
		return
	}

	var low []*model.Product
	for _, rawID := range payload.ProductIDs {
		id, err := uuid.Parse(rawID)
		if err != nil {
			log.Warn().Str("product_id", rawID).Msg("lowstock_worker: invalid product id")
			continue
		}
		p, err := w.products.FindByID(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("product_id", rawID).Msg("lowstock_worker: product not found")
			continue
		}
		if p.StockQuantity > p.MinStockLevel {
			continue
		}
		if w.recentlyNotified(ctx, p.ID) {
			continue
		}
		low = append(low, p)
	}
	if len(low) == 0 {
		return
	}

	subject := fmt.Sprintf("Low stock alert — %d product(s)", len(low))
	body := w.composeBody(low)

	sendErr := withRetry(ctx, maxSendAttempts, func(attempt int) error {
		if err := w.mailer.Send(w.alertEmail, subject, body); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Msg("lowstock_worker: send attempt failed, retrying")
			return err
		}
		return nil
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Msg("lowstock_worker: alert failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueLowStock, "lowstock", raw,
			fmt.Sprintf("smtp send failed after %d attempts: %v", maxSendAttempts, sendErr),
			maxSendAttempts)
		return
	}

	for _, p := range low {
		w.markNotified(ctx, p.ID)
	}
	log.Info().Int("products", len(low)).Str("to", w.alertEmail).Msg("lowstock_worker: alert sent")
}

func (w *LowStockWorker) composeBody(low []*model.Product) string {
	var b strings.Builder
	b.WriteString("The following products are at or below their minimum stock level:\n\n")
	for _, p := range low {
		fmt.Fprintf(&b, "  %s  %s — %d in stock (minimum %d)", p.SKU, p.Name, p.StockQuantity, p.MinStockLevel)
		if p.StockQuantity < 0 {
			b.WriteString("  [NEGATIVE]")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (w *LowStockWorker) recentlyNotified(ctx context.Context, id uuid.UUID) bool {
	n, err := w.rdb.Exists(ctx, notifiedPrefix+id.String()).Result()
	return err == nil && n > 0
}

func (w *LowStockWorker) markNotified(ctx context.Context, id uuid.UUID) {
	if err := w.rdb.Set(ctx, notifiedPrefix+id.String(), "1", notifiedTTL).Err(); err != nil {
		log.Warn().Err(err).Str("product_id", id.String()).Msg("lowstock_worker: failed to mark notified")
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
