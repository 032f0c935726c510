package service

import (
	"github.com/mohamm188/Trend-phone/internal/config"

	"github.com/shopspring/decimal"
)

// CostingPolicy decides a product's new cost basis after a replenishment.
// The coordinator never computes costs itself — swapping the policy must
// not touch the purchase transaction.
type CostingPolicy interface {
	Name() string
	// NewCost receives the product's cost basis and stock level as they
	// were before the purchase line was applied.
	NewCost(currentCost decimal.Decimal, currentQty int, incomingCost decimal.Decimal, incomingQty int) decimal.Decimal
}

// LastCostBasis overwrites the cost basis with the latest purchase cost.
// This is the shop's historical policy: profit reports always value stock
// at the most recent replenishment price.
type LastCostBasis struct{}

func (LastCostBasis) Name() string { return config.CostingLastCost }

func (LastCostBasis) NewCost(_ decimal.Decimal, _ int, incomingCost decimal.Decimal, _ int) decimal.Decimal {
	return incomingCost
}

// WeightedAverageCostBasis blends the existing stock value with the
// incoming line. Not the default — selectable via COSTING_POLICY.
type WeightedAverageCostBasis struct{}

func (WeightedAverageCostBasis) Name() string { return config.CostingWeightedAverage }

func (WeightedAverageCostBasis) NewCost(currentCost decimal.Decimal, currentQty int, incomingCost decimal.Decimal, incomingQty int) decimal.Decimal {
	if currentQty <= 0 || incomingQty <= 0 {
		return incomingCost
	}
	existing := currentCost.Mul(decimal.NewFromInt(int64(currentQty)))
	incoming := incomingCost.Mul(decimal.NewFromInt(int64(incomingQty)))
	total := decimal.NewFromInt(int64(currentQty + incomingQty))
	return existing.Add(incoming).Div(total).Round(2)
}

// CostingPolicyFor maps a COSTING_POLICY config value to its implementation.
func CostingPolicyFor(name string) CostingPolicy {
	if name == config.CostingWeightedAverage {
		return WeightedAverageCostBasis{}
	}
	return LastCostBasis{}
}
