package coupon_test

import (
	"testing"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/coupon"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptrF(v float64) *float64     { return &v }
func ptrI(v int) *int             { return &v }
func ptrT(v time.Time) *time.Time { return &v }

func baseCoupon() *models.Coupon {
	return &models.Coupon{
		Code:          "WELCOME10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
	}
}

func TestValidate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, coupon.Validate(baseCoupon(), 1000, now))
	})

	t.Run("Inactive", func(t *testing.T) {
		c := baseCoupon()
		c.IsActive = false

		assert.ErrorIs(t, coupon.Validate(c, 1000, now), coupon.ErrInactive)
	})

	t.Run("NotYetValid", func(t *testing.T) {
		c := baseCoupon()
		c.ValidFrom = ptrT(now.Add(24 * time.Hour))

		assert.ErrorIs(t, coupon.Validate(c, 1000, now), coupon.ErrNotYetValid)
	})

	t.Run("Expired", func(t *testing.T) {
		c := baseCoupon()
		c.ValidUntil = ptrT(now.Add(-time.Minute))

		assert.ErrorIs(t, coupon.Validate(c, 1000, now), coupon.ErrExpired)
	})

	t.Run("WithinWindow", func(t *testing.T) {
		c := baseCoupon()
		c.ValidFrom = ptrT(now.Add(-time.Hour))
		c.ValidUntil = ptrT(now.Add(time.Hour))

		assert.NoError(t, coupon.Validate(c, 1000, now))
	})

	t.Run("BelowMinimumOrder", func(t *testing.T) {
		c := baseCoupon()
		c.MinimumOrderAmount = 5000

		assert.ErrorIs(t, coupon.Validate(c, 4999.99, now), coupon.ErrBelowMinimumOrder)
		assert.NoError(t, coupon.Validate(c, 5000, now))
	})

	t.Run("UsageLimitReached", func(t *testing.T) {
		c := baseCoupon()
		c.UsageLimit = ptrI(3)
		c.UsedCount = 3

		assert.ErrorIs(t, coupon.Validate(c, 1000, now), coupon.ErrUsageLimitReached)

		c.UsedCount = 2
		assert.NoError(t, coupon.Validate(c, 1000, now))
	})
}

func TestComputeDiscount(t *testing.T) {
	t.Run("Percentage", func(t *testing.T) {
		c := baseCoupon()

		assert.InDelta(t, 1000.0, coupon.ComputeDiscount(c, 10000), 1e-9)
	})

	t.Run("PercentageCapped", func(t *testing.T) {
		c := baseCoupon()
		c.MaximumDiscountAmount = ptrF(500)

		assert.InDelta(t, 500.0, coupon.ComputeDiscount(c, 10000), 1e-9)
	})

	t.Run("FixedAmount", func(t *testing.T) {
		c := baseCoupon()
		c.DiscountType = models.DiscountTypeFixedAmount
		c.DiscountValue = 250

		assert.InDelta(t, 250.0, coupon.ComputeDiscount(c, 10000), 1e-9)
	})

	t.Run("FixedAmountCapHonored", func(t *testing.T) {
		c := baseCoupon()
		c.DiscountType = models.DiscountTypeFixedAmount
		c.DiscountValue = 250
		c.MaximumDiscountAmount = ptrF(100)

		assert.InDelta(t, 100.0, coupon.ComputeDiscount(c, 10000), 1e-9)
	})

	t.Run("RoundsToTwoDecimals", func(t *testing.T) {
		c := baseCoupon()
		c.DiscountValue = 7.5

		assert.InDelta(t, 7.46, coupon.ComputeDiscount(c, 99.49), 1e-9)
	})
}
