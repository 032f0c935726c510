package service

import (
	"context"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
//
// Every business operation in this package runs through runTx as one
// atomic unit: either every write inside fn becomes visible together,
// or a failure rolls all of them back and the caller observes no side
// effect. Postgres serializes the unit's writes, which is the single
// logical writer the ledger assumes.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
