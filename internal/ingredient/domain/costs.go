package domain

// DefaultWastage is applied when a new ingredient omits the wastage share.
const DefaultWastage = 0.05

// ComputeCosts derives the per-base-unit cost and the wastage-adjusted
// real cost from purchase inputs. Results are unrounded.
func ComputeCosts(price, baseQty, wastage float64) (costPerUnit, realCost float64, err error) {
	if price < 0 {
		return 0, 0, ErrInvalidPurchasePrice
	}
	if baseQty <= 0 {
		return 0, 0, ErrInvalidBaseQuantity
	}
	if wastage < 0 || wastage >= 1 {
		return 0, 0, ErrInvalidWastage
	}

	costPerUnit = price / baseQty
	realCost = costPerUnit * (1 + wastage)
	return costPerUnit, realCost, nil
}
