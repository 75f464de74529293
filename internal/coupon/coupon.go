// Package coupon validates coupon records and computes their discounts.
// Everything here is pure; usage accounting happens inside the order
// transaction, never during validation.
package coupon

import (
	"errors"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/pricing"
)

var (
	ErrInactive          = errors.New("coupon is not active")
	ErrNotYetValid       = errors.New("coupon is not valid yet")
	ErrExpired           = errors.New("coupon has expired")
	ErrBelowMinimumOrder = errors.New("order amount is below the coupon minimum")
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
)

// Validate reports whether the coupon may be applied to an order of the given
// amount at the given instant. It has no side effects.
func Validate(c *models.Coupon, orderAmount float64, now time.Time) error {
	if !c.IsActive {
		return ErrInactive
	}

	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return ErrNotYetValid
	}

	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return ErrExpired
	}

	if orderAmount < c.MinimumOrderAmount {
		return ErrBelowMinimumOrder
	}

	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ErrUsageLimitReached
	}

	return nil
}

// ComputeDiscount returns the discount a valid coupon grants on the given
// order amount, capped at MaximumDiscountAmount when set and rounded to two
// decimals. The cap applies to fixed-amount coupons as well.
func ComputeDiscount(c *models.Coupon, orderAmount float64) float64 {
	var discount float64

	switch c.DiscountType {
	case models.DiscountTypePercentage:
		discount = orderAmount * c.DiscountValue / 100
	case models.DiscountTypeFixedAmount:
		discount = c.DiscountValue
	}

	if c.MaximumDiscountAmount != nil && discount > *c.MaximumDiscountAmount {
		discount = *c.MaximumDiscountAmount
	}

	return pricing.Round2(discount)
}
