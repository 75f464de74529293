package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CouponHandler struct {
	couponService service.CouponService
	validator     *validator.Validate
}

func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService, validator: validator.New()}
}

// CreateCoupon godoc
//	@Summary		Create a coupon (Admin)
//	@Description	Adds a new discount coupon. Codes are stored upper case and must be unique.
//	@Tags			Coupons
//	@Accept			json
//	@Produce		json
//	@Param			coupon	body		models.CreateCouponRequest	true	"Coupon details"
//	@Success		201		{object}	models.Coupon				"Successfully created coupon"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Admin access required"
//	@Failure		409		{object}	response.ErrorResponse		"Coupon code already exists"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/coupons [post]
func (h *CouponHandler) CreateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create coupon input")
			return
		}

		coupon, err := h.couponService.CreateCoupon(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create coupon", slog.String("couponCode", req.Code), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Coupon created", slog.String("couponCode", coupon.Code))
		response.Success(w, http.StatusCreated, coupon)
	}
}

// ListCoupons godoc
//	@Summary		List coupons (Admin)
//	@Description	Returns all coupons with their usage counters.
//	@Tags			Coupons
//	@Produce		json
//	@Success		200	{object}	[]models.Coupon			"Coupons"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admin access required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/coupons [get]
func (h *CouponHandler) ListCoupons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		coupons, err := h.couponService.ListCoupons(r.Context())
		if err != nil {
			logger.Error("Failed to list coupons", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, coupons)
	}
}
