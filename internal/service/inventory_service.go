package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamm188/Trend-phone/internal/config"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InventoryService is the only path that mutates stock quantities.
// Sales, purchases, adjustments and restores all funnel their deltas
// through ApplyStockDeltaTx so the stock policy is enforced in one place.
type InventoryService interface {
	// ApplyStockDeltaTx applies a signed quantity change inside the
	// caller's transaction. Under the "reject" policy a negative delta
	// that would drive stock below zero fails the whole transaction;
	// under "allow" (the default) stock goes negative and shows up in
	// the low-stock report.
	ApplyStockDeltaTx(tx *gorm.DB, productID uuid.UUID, delta int) error

	RecordAdjustment(ctx context.Context, req dto.RecordStockAdjustmentRequest) (*dto.StockAdjustmentResponse, error)
	ListAdjustments(ctx context.Context) ([]dto.StockAdjustmentResponse, error)
	ListAdjustmentsByProduct(ctx context.Context, productID uuid.UUID) ([]dto.StockAdjustmentResponse, error)
	LowStock(ctx context.Context) ([]dto.LowStockResponse, error)
}

type inventoryService struct {
	products    repository.ProductRepository
	adjustments repository.StockAdjustmentRepository
	stockPolicy string
}

func NewInventoryService(
	products repository.ProductRepository,
	adjustments repository.StockAdjustmentRepository,
	stockPolicy string,
) InventoryService {
	return &inventoryService{
		products:    products,
		adjustments: adjustments,
		stockPolicy: stockPolicy,
	}
}

func (s *inventoryService) ApplyStockDeltaTx(tx *gorm.DB, productID uuid.UUID, delta int) error {
	if delta < 0 && s.stockPolicy == config.StockPolicyReject {
		p, err := s.products.FindByIDTx(tx, productID)
		if err != nil {
			return fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		if p.StockQuantity+delta < 0 {
			return fmt.Errorf("%w: product %s has %d units, requested %d",
				ErrInsufficientStock, p.SKU, p.StockQuantity, -delta)
		}
	}
	return s.products.UpdateStockTx(tx, productID, delta)
}

// RecordAdjustment writes the adjustment row and its stock effect as one
// unit. Every kind subtracts; "correction" is not a signed override.
func (s *inventoryService) RecordAdjustment(ctx context.Context, req dto.RecordStockAdjustmentRequest) (*dto.StockAdjustmentResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrInvalidID
	}
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", req.ProductID, ErrNotFound)
	}

	adj := model.StockAdjustment{
		ProductID: productID,
		Kind:      req.Kind,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
	}

	err = runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.adjustments.CreateTx(tx, &adj); err != nil {
			return err
		}
		return s.ApplyStockDeltaTx(tx, productID, -req.Quantity)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("product_id", productID.String()).
		Str("kind", req.Kind).
		Int("quantity", req.Quantity).
		Msg("stock adjustment recorded")

	resp := adjustmentResponse(&adj)
	resp.Product = p.Name
	return resp, nil
}

func (s *inventoryService) ListAdjustments(ctx context.Context) ([]dto.StockAdjustmentResponse, error) {
	rows, err := s.adjustments.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAdjustmentResponse, 0, len(rows))
	for i := range rows {
		r := adjustmentResponse(&rows[i])
		if rows[i].Product != nil {
			r.Product = rows[i].Product.Name
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *inventoryService) ListAdjustmentsByProduct(ctx context.Context, productID uuid.UUID) ([]dto.StockAdjustmentResponse, error) {
	rows, err := s.adjustments.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAdjustmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *adjustmentResponse(&rows[i]))
	}
	return out, nil
}

func (s *inventoryService) LowStock(ctx context.Context) ([]dto.LowStockResponse, error) {
	products, err := s.products.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockResponse{
			ProductID:     p.ID.String(),
			SKU:           p.SKU,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			MinStockLevel: p.MinStockLevel,
			Negative:      p.StockQuantity < 0,
		})
	}
	return out, nil
}

func adjustmentResponse(a *model.StockAdjustment) *dto.StockAdjustmentResponse {
	return &dto.StockAdjustmentResponse{
		ID:        a.ID.String(),
		ProductID: a.ProductID.String(),
		Kind:      a.Kind,
		Quantity:  a.Quantity,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
