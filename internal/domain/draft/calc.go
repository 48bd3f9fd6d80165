package draft

import (
	"github.com/shopspring/decimal"

	"electripro/internal/domain/entities"
)

// MaxTaxRate caps the tax rate percentage a draft will accept.
const MaxTaxRate = 20

// CalculateTotals derives the aggregate cost breakdown from the line items.
//
// Pure and deterministic: no side effects, and since addition is commutative
// the result does not depend on line order. Accumulation happens in decimal
// space so repeated recomputation over unchanged inputs is exactly
// idempotent. Empty collections yield zero totals.
func CalculateTotals(materials []entities.MaterialLine, labor []entities.LaborLine, taxRate float64) entities.Totals {
	materialsCost := decimal.Zero
	for _, m := range materials {
		materialsCost = materialsCost.Add(decimal.NewFromFloat(sanitizeNumber(m.Total)))
	}

	laborCost := decimal.Zero
	for _, l := range labor {
		laborCost = laborCost.Add(decimal.NewFromFloat(sanitizeNumber(l.Total)))
	}

	subtotal := materialsCost.Add(laborCost)
	rate := decimal.NewFromFloat(clampTaxRate(taxRate))
	taxAmount := subtotal.Mul(rate).Div(decimal.NewFromInt(100))
	grandTotal := subtotal.Add(taxAmount)

	return entities.Totals{
		MaterialsCost: materialsCost.InexactFloat64(),
		LaborCost:     laborCost.InexactFloat64(),
		Subtotal:      subtotal.InexactFloat64(),
		TaxAmount:     taxAmount.InexactFloat64(),
		GrandTotal:    grandTotal.InexactFloat64(),
	}
}

func clampTaxRate(rate float64) float64 {
	rate = sanitizeNumber(rate)
	if rate > MaxTaxRate {
		return MaxTaxRate
	}
	return rate
}
