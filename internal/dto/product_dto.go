package dto

import "github.com/shopspring/decimal"

type ProductFilter struct {
	SKU      string `form:"sku"`
	Name     string `form:"name"`
	Category string `form:"category" validate:"omitempty,oneof=phone accessory"`
	Brand    string `form:"brand"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CreateProductRequest struct {
	SKU       string          `json:"sku"      validate:"required"`
	Name      string          `json:"name"     validate:"required"`
	Category  string          `json:"category" validate:"required,oneof=phone accessory"`
	Brand     *string         `json:"brand"`
	Model     *string         `json:"model"`
	SalePrice decimal.Decimal `json:"sale_price" validate:"required"`
	UnitCost  decimal.Decimal `json:"unit_cost"  validate:"min=0"`
	// OpeningStock seeds both stock_quantity and the immutable opening snapshot.
	OpeningStock  int     `json:"opening_stock"   validate:"min=0"`
	MinStockLevel int     `json:"min_stock_level" validate:"min=0"`
	Unit          string  `json:"unit"`
	Notes         *string `json:"notes"`
	Warehouse     *string `json:"warehouse"`
	Location      *string `json:"location"`
}

type UpdateProductRequest struct {
	Name          string           `json:"name"`
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	MinStockLevel *int             `json:"min_stock_level" validate:"omitempty,min=0"`
	Unit          string           `json:"unit"`
	Notes         *string          `json:"notes"`
	Warehouse     *string          `json:"warehouse"`
	Location      *string          `json:"location"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Brand         *string         `json:"brand,omitempty"`
	Model         *string         `json:"model,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	StockQuantity int             `json:"stock_quantity"`
	OpeningStock  int             `json:"opening_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	Unit          string          `json:"unit"`
	LowStock      bool            `json:"low_stock"`
	Notes         *string         `json:"notes,omitempty"`
	Warehouse     *string         `json:"warehouse,omitempty"`
	Location      *string         `json:"location,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
