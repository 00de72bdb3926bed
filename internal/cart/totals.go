package cart

import (
	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/shopspring/decimal"
)

// Totals derives the cart summary from lines. It is recomputed on every
// read and never stored.
func Totals(lines Lines) domain.CartSnapshot {
	return domain.CartSnapshot{
		TotalItemCount: itemCount(lines),
		Subtotal:       Subtotal(lines).InexactFloat64(),
	}
}

// Subtotal is the exact sum of unit price times quantity.
func Subtotal(lines Lines) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines.byID {
		sum = sum.Add(decimal.NewFromFloat(line.UnitPrice).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

func itemCount(lines Lines) int {
	count := 0
	for _, line := range lines.byID {
		count += line.Quantity
	}
	return count
}
