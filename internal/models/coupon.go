package models

import "time"

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
)

type Coupon struct {
	ID                 int64        `json:"id"`
	Code               string       `json:"code"`
	Description        string       `json:"description,omitempty"`
	DiscountType       DiscountType `json:"discount_type"`
	DiscountValue      float64      `json:"discount_value"`
	MinimumOrderAmount float64      `json:"minimum_order_amount"`
	// MaximumDiscountAmount caps the computed discount when set. The cap is
	// honored for fixed-amount coupons too.
	MaximumDiscountAmount *float64   `json:"maximum_discount_amount,omitempty"`
	UsageLimit            *int       `json:"usage_limit,omitempty"`
	UsedCount             int        `json:"used_count"`
	IsActive              bool       `json:"is_active"`
	ValidFrom             *time.Time `json:"valid_from,omitempty"`
	ValidUntil            *time.Time `json:"valid_until,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

type CreateCouponRequest struct {
	Code                  string       `json:"code" validate:"required,min=3,max=50"`
	Description           string       `json:"description,omitempty"`
	DiscountType          DiscountType `json:"discount_type" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	DiscountValue         float64      `json:"discount_value" validate:"required,gt=0"`
	MinimumOrderAmount    float64      `json:"minimum_order_amount" validate:"gte=0"`
	MaximumDiscountAmount *float64     `json:"maximum_discount_amount,omitempty" validate:"omitempty,gt=0"`
	UsageLimit            *int         `json:"usage_limit,omitempty" validate:"omitempty,gt=0"`
	ValidFrom             *time.Time   `json:"valid_from,omitempty"`
	ValidUntil            *time.Time   `json:"valid_until,omitempty"`
}
