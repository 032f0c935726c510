package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService manages the catalog. Stock and cost never change here:
// both belong to the coordinator transactions (sales, purchases,
// adjustments), so Update deliberately has no stock or cost field.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.products.FindBySKU(ctx, req.SKU); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit := req.Unit
	if unit == "" {
		unit = "unit"
	}

	p := model.Product{
		SKU:           req.SKU,
		Name:          req.Name,
		Category:      req.Category,
		Brand:         req.Brand,
		Model:         req.Model,
		SalePrice:     req.SalePrice,
		UnitCost:      req.UnitCost,
		StockQuantity: req.OpeningStock,
		OpeningStock:  req.OpeningStock,
		MinStockLevel: req.MinStockLevel,
		Unit:          unit,
		Notes:         req.Notes,
		Warehouse:     req.Warehouse,
		Location:      req.Location,
	}
	if err := s.products.Create(ctx, &p); err != nil {
		return nil, err
	}

	log.Info().Str("sku", p.SKU).Str("category", p.Category).Msg("product created")
	return productResponse(&p), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return productResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Data:  make([]dto.ProductResponse, 0, len(products)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range products {
		out.Data = append(out.Data, *productResponse(&products[i]))
	}
	return out, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Brand != nil {
		p.Brand = req.Brand
	}
	if req.Model != nil {
		p.Model = req.Model
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}
	if req.MinStockLevel != nil {
		p.MinStockLevel = *req.MinStockLevel
	}
	if req.Unit != "" {
		p.Unit = req.Unit
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}
	if req.Warehouse != nil {
		p.Warehouse = req.Warehouse
	}
	if req.Location != nil {
		p.Location = req.Location
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return productResponse(p), nil
}

func productResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID.String(),
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		Brand:         p.Brand,
		Model:         p.Model,
		SalePrice:     p.SalePrice,
		UnitCost:      p.UnitCost,
		StockQuantity: p.StockQuantity,
		OpeningStock:  p.OpeningStock,
		MinStockLevel: p.MinStockLevel,
		Unit:          p.Unit,
		LowStock:      p.StockQuantity <= p.MinStockLevel,
		Notes:         p.Notes,
		Warehouse:     p.Warehouse,
		Location:      p.Location,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
