package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuoteSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     Quote
	}{
		{"empty", 0, Quote{Subtotal: 0, DeliveryFee: 29, Taxes: 0, Total: 29}},
		{"below threshold", 450, Quote{Subtotal: 450, DeliveryFee: 29, Taxes: 22.5, Total: 501.5}},
		{"exactly threshold pays delivery", 500, Quote{Subtotal: 500, DeliveryFee: 29, Taxes: 25, Total: 554}},
		{"above threshold", 600, Quote{Subtotal: 600, DeliveryFee: 0, Taxes: 30, Total: 630}},
		{"unrounded taxes", 333, Quote{Subtotal: 333, DeliveryFee: 29, Taxes: 16.65, Total: 378.65}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteSubtotal(decimal.NewFromInt(tt.subtotal)))
		})
	}
}
