package service

import (
	"context"
	"time"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LedgerService manages the shop-level revenue/expense log. Entries are
// standalone rows, detached from sales and purchases.
type LedgerService interface {
	RecordEntry(ctx context.Context, req dto.RecordLedgerEntryRequest) (*dto.LedgerEntryResponse, error)
	List(ctx context.Context, filter dto.LedgerFilter) (*dto.LedgerListResponse, error)
	Summary(ctx context.Context) (*dto.LedgerSummaryResponse, error)
}

type ledgerService struct {
	entries repository.GeneralLedgerRepository
}

func NewLedgerService(entries repository.GeneralLedgerRepository) LedgerService {
	return &ledgerService{entries: entries}
}

func (s *ledgerService) RecordEntry(ctx context.Context, req dto.RecordLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	e := model.GeneralLedgerEntry{
		Kind:        req.Kind,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	err := runTx(ctx, s.entries.DB(), func(tx *gorm.DB) error {
		return s.entries.CreateTx(tx, &e)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("kind", e.Kind).
		Str("category", e.Category).
		Str("amount", e.Amount.StringFixed(2)).
		Msg("ledger entry recorded")

	return ledgerEntryResponse(&e), nil
}

func (s *ledgerService) List(ctx context.Context, filter dto.LedgerFilter) (*dto.LedgerListResponse, error) {
	entries, total, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.LedgerListResponse{
		Data:  make([]dto.LedgerEntryResponse, 0, len(entries)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range entries {
		out.Data = append(out.Data, *ledgerEntryResponse(&entries[i]))
	}
	return out, nil
}

func (s *ledgerService) Summary(ctx context.Context) (*dto.LedgerSummaryResponse, error) {
	revenue, expenses, err := s.entries.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerSummaryResponse{
		Revenue:  revenue,
		Expenses: expenses,
		Net:      revenue.Sub(expenses),
	}, nil
}

func ledgerEntryResponse(e *model.GeneralLedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:          e.ID.String(),
		Kind:        e.Kind,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
