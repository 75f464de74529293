package service

import (
	"context"
	"strings"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type CouponService interface {
	CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error)
	ListCoupons(ctx context.Context) ([]*models.Coupon, error)
}

type couponService struct {
	repo repository.CouponRepository
}

func NewCouponService(repo repository.CouponRepository) CouponService {
	return &couponService{repo: repo}
}

func (s *couponService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {
	if req.ValidFrom != nil && req.ValidUntil != nil && req.ValidUntil.Before(*req.ValidFrom) {
		return nil, apperrors.BadRequestError("validUntil must be after validFrom")
	}

	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
		return nil, apperrors.BadRequestError("Percentage discount cannot exceed 100")
	}

	coupon := &models.Coupon{
		Code:                  strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:           utils.Sanitize(req.Description),
		DiscountType:          req.DiscountType,
		DiscountValue:         req.DiscountValue,
		MinimumOrderAmount:    req.MinimumOrderAmount,
		MaximumDiscountAmount: req.MaximumDiscountAmount,
		UsageLimit:            req.UsageLimit,
		IsActive:              true,
		ValidFrom:             req.ValidFrom,
		ValidUntil:            req.ValidUntil,
	}

	if err := s.repo.CreateCoupon(ctx, coupon); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.DuplicateEntryError("Coupon code already exists")
		}

		return nil, apperrors.DatabaseError("Failed to create coupon").WithError(err)
	}

	return coupon, nil
}

func (s *couponService) ListCoupons(ctx context.Context) ([]*models.Coupon, error) {
	coupons, err := s.repo.ListCoupons(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to list coupons").WithError(err)
	}

	return coupons, nil
}
