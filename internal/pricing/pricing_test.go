package pricing_test

import (
	"testing"

	"github.com/aurumlabs/gold-commerce-platform/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"NoFraction", 100, 100},
		{"TwoDecimals", 99.99, 99.99},
		{"RoundsHalfUp", 10.015, 10.02},
		{"RoundsDown", 10.004, 10.0},
		{"LongFraction", 1234.56789, 1234.57},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, pricing.Round2(tc.in), 1e-9)
		})
	}
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		discount float64
		want     float64
	}{
		{"NoDiscount", 5000, 0, 5000},
		{"TenPercent", 5000, 10, 4500},
		{"FractionalResult", 999.99, 15, 849.99},
		{"FullDiscount", 1200, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, pricing.FinalPrice(tc.base, tc.discount), 1e-9)
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.InDelta(t, 13500.0, pricing.LineTotal(4500, 3), 1e-9)
	assert.InDelta(t, 0.3, pricing.LineTotal(0.1, 3), 1e-9)
}

func TestOrderTotals(t *testing.T) {
	t.Run("FreeShippingAboveThreshold", func(t *testing.T) {
		got := pricing.OrderTotals(60000, 0)

		assert.InDelta(t, 10800.0, got.TaxAmount, 1e-9)
		assert.InDelta(t, 0.0, got.ShippingAmount, 1e-9)
		assert.InDelta(t, 70800.0, got.TotalAmount, 1e-9)
	})

	t.Run("FlatShippingBelowThreshold", func(t *testing.T) {
		got := pricing.OrderTotals(10000, 500)

		assert.InDelta(t, 1800.0, got.TaxAmount, 1e-9)
		assert.InDelta(t, 500.0, got.ShippingAmount, 1e-9)
		assert.InDelta(t, 11800.0, got.TotalAmount, 1e-9)
	})

	t.Run("ThresholdExactlyStillPaysShipping", func(t *testing.T) {
		got := pricing.OrderTotals(50000, 0)

		assert.InDelta(t, pricing.FlatShippingFee, got.ShippingAmount, 1e-9)
	})

	t.Run("RoundsEachStep", func(t *testing.T) {
		got := pricing.OrderTotals(100.555, 10.015)

		assert.InDelta(t, 18.1, got.TaxAmount, 1e-9)
		assert.InDelta(t, 10.02, got.DiscountAmount, 1e-9)
	})
}
