package service

import (
	"context"

	"github.com/mohamm188/Trend-phone/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings:display"

// SettingsService stores display-only settings (currency code and two
// exchange rates) in a Redis hash. These never participate in ledger
// math and survive a database restore untouched.
type SettingsService interface {
	Get(ctx context.Context) (*dto.Settings, error)
	Put(ctx context.Context, s dto.Settings) error
}

type settingsService struct {
	rdb *redis.Client
}

func NewSettingsService(rdb *redis.Client) SettingsService {
	return &settingsService{rdb: rdb}
}

func (s *settingsService) Get(ctx context.Context) (*dto.Settings, error) {
	values, err := s.rdb.HGetAll(ctx, settingsKey).Result()
	if err != nil {
		return nil, err
	}

	out := &dto.Settings{CurrencyCode: "USD", RateUSD: "1", RateEUR: "1"}
	if v, ok := values["currency_code"]; ok {
		out.CurrencyCode = v
	}
	if v, ok := values["rate_usd"]; ok {
		out.RateUSD = v
	}
	if v, ok := values["rate_eur"]; ok {
		out.RateEUR = v
	}
	return out, nil
}

func (s *settingsService) Put(ctx context.Context, settings dto.Settings) error {
	err := s.rdb.HSet(ctx, settingsKey,
		"currency_code", settings.CurrencyCode,
		"rate_usd", settings.RateUSD,
		"rate_eur", settings.RateEUR,
	).Err()
	if err != nil {
		return err
	}
	log.Info().Str("currency", settings.CurrencyCode).Msg("display settings updated")
	return nil
}
