package dto

type RecordStockAdjustmentRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Kind      string `json:"kind"       validate:"required,oneof=damaged lost correction"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
	Reason    string `json:"reason"`
}

type StockAdjustmentResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Product   string `json:"product,omitempty"`
	Kind      string `json:"kind"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

// LowStockResponse flags a product at or below its minimum threshold.
// Negative stock shows up here too under the "allow" stock policy.
type LowStockResponse struct {
	ProductID     string `json:"product_id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
	MinStockLevel int    `json:"min_stock_level"`
	Negative      bool   `json:"negative"`
}
