package order

import (
	"math"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/cart"
)

// TaxRate is the fixed checkout tax fraction.
const TaxRate = 0.10

// Totals is the derived money breakdown for a cart. Tax and delivery
// are never set independently; GrandTotal is always the exact sum.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Delivery   float64 `json:"delivery"`
	GrandTotal float64 `json:"grand_total"`
}

// ComputeTotals sums unit price times quantity, applies the tax with
// the same whole-unit rounding the storefront always used, and adds
// the flat delivery fee when the cart is non-empty. Negative prices
// and quantities are clamped to zero.
func ComputeTotals(lines []cart.Line, deliveryFee float64) Totals {
	subtotal := 0.0
	for _, line := range lines {
		price := line.UnitPrice
		if price < 0 {
			price = 0
		}
		qty := line.Quantity
		if qty < 0 {
			qty = 0
		}
		subtotal += price * float64(qty)
	}

	tax := math.Round(subtotal * TaxRate)

	delivery := 0.0
	if len(lines) > 0 {
		delivery = deliveryFee
	}

	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		Delivery:   delivery,
		GrandTotal: subtotal + tax + delivery,
	}
}
