package checkout

import (
	"github.com/Tyyuu55/Crave-Now/internal/cart"
	"github.com/shopspring/decimal"
)

var (
	freeDeliveryAbove = decimal.NewFromInt(500)
	flatDeliveryFee   = decimal.NewFromInt(29)
	taxRate           = decimal.RequireFromString("0.05")
)

type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Taxes       float64 `json:"taxes"`
	Total       float64 `json:"total"`
}

// QuoteSubtotal prices an order. Delivery is free strictly above 500;
// taxes are 5% of the subtotal and are not rounded.
func QuoteSubtotal(subtotal decimal.Decimal) Quote {
	fee := flatDeliveryFee
	if subtotal.GreaterThan(freeDeliveryAbove) {
		fee = decimal.Zero
	}
	taxes := subtotal.Mul(taxRate)

	return Quote{
		Subtotal:    subtotal.InexactFloat64(),
		DeliveryFee: fee.InexactFloat64(),
		Taxes:       taxes.InexactFloat64(),
		Total:       subtotal.Add(fee).Add(taxes).InexactFloat64(),
	}
}

func QuoteLines(lines cart.Lines) Quote {
	return QuoteSubtotal(cart.Subtotal(lines))
}
