package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/infra"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AlertDispatcher enqueues asynchronous low-stock checks after a sale
// commits. A nil dispatcher disables alerts.
type AlertDispatcher interface {
	EnqueueLowStockCheck(ctx context.Context, productIDs []uuid.UUID) error
}

// SaleService records sales as single atomic units: header plus items,
// stock decrements, customer ledger rows and the recomputed balance all
// commit together or not at all.
type SaleService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	// ReceiptPDF renders the sale receipt and returns the file path.
	ReceiptPDF(ctx context.Context, id uuid.UUID) (string, error)
}

type saleService struct {
	sales       repository.SaleRepository
	products    repository.ProductRepository
	customers   repository.CustomerRepository
	customerTxs repository.TransactionRepository
	inventory   InventoryService
	credit      CreditService
	alerts      AlertDispatcher
	pdfDir      string
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	customerTxs repository.TransactionRepository,
	inventory InventoryService,
	credit CreditService,
	alerts AlertDispatcher,
	pdfDir string,
) SaleService {
	return &saleService{
		sales:       sales,
		products:    products,
		customers:   customers,
		customerTxs: customerTxs,
		inventory:   inventory,
		credit:      credit,
		alerts:      alerts,
		pdfDir:      pdfDir,
	}
}

func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	var customerID *uuid.UUID
	if req.CustomerID != nil {
		id, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, ErrInvalidID
		}
		if _, err := s.customers.FindByID(ctx, id); err != nil {
			return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
		}
		customerID = &id
	}

	// Resolve every product up front so an unknown id fails before any write.
	names := make(map[uuid.UUID]string, len(req.Items))
	items := make([]model.SaleItem, 0, len(req.Items))
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

		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, model.SaleItem{
			ProductID: pid,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  subtotal,
		})
		expected = expected.Add(subtotal)
	}
	if !expected.Sub(req.Discount).Equal(req.TotalAmount) {
		return nil, ErrTotalMismatch
	}

	method := req.PaymentMethod
	if method == "" {
		method = "cash"
	}

	sale := &model.Sale{
		CustomerID:    customerID,
		TotalAmount:   req.TotalAmount,
		Discount:      req.Discount,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: method,
		Items:         items,
	}

	err := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		if err := s.sales.Create(ctx, tx, sale); err != nil {
			return err
		}
		for _, it := range sale.Items {
			if err := s.inventory.ApplyStockDeltaTx(tx, it.ProductID, -it.Quantity); err != nil {
				return err
			}
		}
		if customerID == nil {
			return nil
		}

		// Credit sale: log the debt, log the settlement if already paid,
		// then re-derive the balance from the whole history.
		debt := &model.Transaction{
			CustomerID:  *customerID,
			Kind:        "sale",
			Amount:      sale.TotalAmount,
			Description: "Sale " + shortID(sale.ID),
		}
		if err := s.customerTxs.CreateTx(tx, debt); err != nil {
			return err
		}
		if sale.PaymentStatus == "paid" {
			settle := &model.Transaction{
				CustomerID:  *customerID,
				Kind:        "payment",
				Amount:      sale.TotalAmount,
				Description: "Payment for sale " + shortID(sale.ID),
			}
			if err := s.customerTxs.CreateTx(tx, settle); err != nil {
				return err
			}
		}
		_, err := s.credit.RecalcCustomerBalanceTx(tx, *customerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("sale_id", sale.ID.String()).
		Str("total", sale.TotalAmount.StringFixed(2)).
		Str("status", sale.PaymentStatus).
		Int("items", len(sale.Items)).
		Msg("sale recorded")

	if s.alerts != nil {
		ids := make([]uuid.UUID, 0, len(sale.Items))
		for _, it := range sale.Items {
			ids = append(ids, it.ProductID)
		}
		if err := s.alerts.EnqueueLowStockCheck(ctx, ids); err != nil {
			log.Warn().Err(err).Msg("failed to enqueue low stock check")
		}
	}

	return saleResponse(sale, names), nil
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sale %s: %w", id, ErrNotFound)
	}
	return saleResponse(sale, nil), nil
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	sales, total, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Data:  make([]dto.SaleResponse, 0, len(sales)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range sales {
		out.Data = append(out.Data, *saleResponse(&sales[i], nil))
	}
	return out, nil
}

func (s *saleService) ReceiptPDF(ctx context.Context, id uuid.UUID) (string, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("sale %s: %w", id, ErrNotFound)
	}
	return infra.GenerateReceiptPDF(sale, s.pdfDir)
}

// saleResponse maps a sale to its response shape. Product names come from
// the preloaded association when present, or from the names map built
// during RecordSale.
func saleResponse(sale *model.Sale, names map[uuid.UUID]string) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID.String(),
		TotalAmount:   sale.TotalAmount,
		Discount:      sale.Discount,
		PaymentStatus: sale.PaymentStatus,
		PaymentMethod: sale.PaymentMethod,
		CreatedAt:     sale.CreatedAt.Format(time.RFC3339),
		Items:         make([]dto.SaleItemResponse, 0, len(sale.Items)),
	}
	if sale.CustomerID != nil {
		id := sale.CustomerID.String()
		resp.CustomerID = &id
	}
	for _, it := range sale.Items {
		name := names[it.ProductID]
		if it.Product != nil {
			name = it.Product.Name
		}
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			Product:   name,
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
