// Package pricing holds the money math for the catalog, cart and order flows.
// Every result is rounded half-up to two decimals at each step, matching how
// the persisted amounts are produced, so recombining stored values never
// drifts from the live computation.
package pricing

import "math"

const (
	// TaxRate is the GST applied to every order subtotal.
	TaxRate = 0.18
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 50000.0
	// FlatShippingFee is charged when the subtotal does not exceed the threshold.
	FlatShippingFee = 500.0
)

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FinalPrice derives a product's selling price from its base price and
// discount percentage. It is recomputed on every mutation of either input.
func FinalPrice(basePrice, discountPercentage float64) float64 {
	return Round2(basePrice - basePrice*discountPercentage/100)
}

// LineTotal is the total for one cart or order line.
func LineTotal(unitPrice float64, quantity int) float64 {
	return Round2(unitPrice * float64(quantity))
}

// Totals is an order's computed money breakdown.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	ShippingAmount float64
	TotalAmount    float64
}

// OrderTotals computes tax, shipping and the grand total for an order.
// Shipping is free strictly above the threshold; a subtotal equal to the
// threshold still pays the flat fee.
func OrderTotals(subtotal, discountAmount float64) Totals {
	tax := Round2(subtotal * TaxRate)

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	return Totals{
		Subtotal:       Round2(subtotal),
		DiscountAmount: Round2(discountAmount),
		TaxAmount:      tax,
		ShippingAmount: shipping,
		TotalAmount:    Round2(subtotal - discountAmount + tax + shipping),
	}
}
