package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseService records supplier replenishments. Each purchase raises
// stock, re-prices the cost basis through the configured costing policy
// and appends to the supplier movement log, all in one transaction.
type PurchaseService interface {
	RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	ListPurchases(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error)
}

type purchaseService struct {
	purchases   repository.PurchaseRepository
	products    repository.ProductRepository
	suppliers   repository.SupplierRepository
	supplierTxs repository.SupplierTransactionRepository
	inventory   InventoryService
	credit      CreditService
	costing     CostingPolicy
}

func NewPurchaseService(
	purchases repository.PurchaseRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	supplierTxs repository.SupplierTransactionRepository,
	inventory InventoryService,
	credit CreditService,
	costing CostingPolicy,
) PurchaseService {
	return &purchaseService{
		purchases:   purchases,
		products:    products,
		suppliers:   suppliers,
		supplierTxs: supplierTxs,
		inventory:   inventory,
		credit:      credit,
		costing:     costing,
	}
}

func (s *purchaseService) RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		return nil, fmt.Errorf("supplier %s: %w", supplierID, ErrNotFound)
	}

	names := make(map[uuid.UUID]string, len(req.Items))
	items := make([]model.PurchaseItem, 0, len(req.Items))
	expected := decimal.Zero
	for _, it := range req.Items {
		pid, err := uuid.Parse(it.ProductID)
		if err != nil {
			return nil, ErrInvalidID
		}
		p, err := s.products.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", it.ProductID, ErrNotFound)
		}
		names[pid] = p.Name

		subtotal := it.UnitCost.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, model.PurchaseItem{
			ProductID: pid,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			Subtotal:  subtotal,
		})
		expected = expected.Add(subtotal)
	}
	if !expected.Equal(req.TotalAmount) {
		return nil, ErrTotalMismatch
	}

	purchase := &model.Purchase{
		SupplierID:    supplierID,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: req.PaymentStatus,
		Items:         items,
	}

	err = runTx(ctx, s.purchases.DB(), func(tx *gorm.DB) error {
		if err := s.purchases.Create(ctx, tx, purchase); err != nil {
			return err
		}
		for _, it := range purchase.Items {
			// Read the pre-replenishment state for the costing policy,
			// then raise stock and overwrite the cost basis.
			p, err := s.products.FindByIDTx(tx, it.ProductID)
			if err != nil {
				return err
			}
			newCost := s.costing.NewCost(p.UnitCost, p.StockQuantity, it.UnitCost, it.Quantity)
			if err := s.inventory.ApplyStockDeltaTx(tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
			if err := s.products.UpdateCostTx(tx, it.ProductID, newCost); err != nil {
				return err
			}
		}

		debt := &model.SupplierTransaction{
			SupplierID:  supplierID,
			Kind:        "purchase",
			Amount:      purchase.TotalAmount,
			Description: "Purchase " + shortID(purchase.ID),
		}
		if err := s.supplierTxs.CreateTx(tx, debt); err != nil {
			return err
		}
		if purchase.PaymentStatus == "paid" {
			settle := &model.SupplierTransaction{
				SupplierID:  supplierID,
				Kind:        "payment",
				Amount:      purchase.TotalAmount,
				Description: "Payment for purchase " + shortID(purchase.ID),
			}
			if err := s.supplierTxs.CreateTx(tx, settle); err != nil {
				return err
			}
		}
		_, err := s.credit.RecalcSupplierBalanceTx(tx, supplierID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("purchase_id", purchase.ID.String()).
		Str("supplier_id", supplierID.String()).
		Str("total", purchase.TotalAmount.StringFixed(2)).
		Str("costing", s.costing.Name()).
		Msg("purchase recorded")

	return purchaseResponse(purchase, names), nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("purchase %s: %w", id, ErrNotFound)
	}
	return purchaseResponse(purchase, nil), nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, filter dto.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	purchases, total, err := s.purchases.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseListResponse{
		Data:  make([]dto.PurchaseResponse, 0, len(purchases)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range purchases {
		out.Data = append(out.Data, *purchaseResponse(&purchases[i], nil))
	}
	return out, nil
}

func purchaseResponse(p *model.Purchase, names map[uuid.UUID]string) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:            p.ID.String(),
		SupplierID:    p.SupplierID.String(),
		TotalAmount:   p.TotalAmount,
		PaymentStatus: p.PaymentStatus,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		Items:         make([]dto.PurchaseItemResponse, 0, len(p.Items)),
	}
	for _, it := range p.Items {
		name := names[it.ProductID]
		if it.Product != nil {
			name = it.Product.Name
		}
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			Product:   name,
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
