package dto

import "github.com/mohamm188/Trend-phone/internal/model"

// Snapshot is a full export of every ledger table. The per-table schema
// is statically declared here: a snapshot that does not unmarshal into
// these shapes is rejected before the restore deletes anything.
// There is no schema version negotiation — restoring a snapshot produced
// by an incompatible schema is the caller's responsibility.
type Snapshot struct {
	Products             []model.Product             `json:"products"`
	Customers            []model.Customer            `json:"customers"`
	Suppliers            []model.Supplier            `json:"suppliers"`
	Sales                []model.Sale                `json:"sales"`
	SaleItems            []model.SaleItem            `json:"sale_items"`
	Purchases            []model.Purchase            `json:"purchases"`
	PurchaseItems        []model.PurchaseItem        `json:"purchase_items"`
	Transactions         []model.Transaction         `json:"transactions"`
	SupplierTransactions []model.SupplierTransaction `json:"supplier_transactions"`
	LedgerEntries        []model.GeneralLedgerEntry  `json:"general_ledger"`
	StockAdjustments     []model.StockAdjustment     `json:"stock_adjustments"`

	ExportedAt string `json:"exported_at"`
}
