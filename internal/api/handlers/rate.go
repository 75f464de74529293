package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type RateHandler struct {
	rateService service.RateService
	validator   *validator.Validate
}

func NewRateHandler(rateService service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService, validator: validator.New()}
}

// TodayRate godoc
//	@Summary		Get today's rate
//	@Description	Returns today's rate for an asset together with the change against yesterday's close.
//	@Tags			Rates
//	@Produce		json
//	@Param			asset	path		string						true	"Asset name (gold, silver, bitcoin)"
//	@Success		200		{object}	models.TodayRateResponse	"Today's rate"
//	@Failure		404		{object}	response.ErrorResponse		"Unknown asset"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/rates/{asset}/today [get]
func (h *RateHandler) TodayRate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		asset := r.PathValue("asset")
		if asset == "" {
			response.Error(w, errors.BadRequestError("Missing asset in path"))
			return
		}

		rate, err := h.rateService.GetTodayRate(r.Context(), asset)
		if err != nil {
			logger.Warn("Failed to get today's rate", slog.String("asset", asset), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, rate)
	}
}

// RateHistory godoc
//	@Summary		Get rate history
//	@Description	Returns daily rates for an asset over the requested window, newest first. Missing days are filled in on read.
//	@Tags			Rates
//	@Produce		json
//	@Param			asset	path		string						true	"Asset name (gold, silver, bitcoin)"
//	@Param			days	query		int							false	"Window size in days (default: 10, max: 90)"
//	@Success		200		{object}	models.RateHistoryResponse	"Rate history"
//	@Failure		404		{object}	response.ErrorResponse		"Unknown asset"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/rates/{asset}/history [get]
func (h *RateHandler) RateHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		asset := r.PathValue("asset")
		if asset == "" {
			response.Error(w, errors.BadRequestError("Missing asset in path"))
			return
		}

		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		if days < 1 || days > 90 {
			days = 10
		}

		history, err := h.rateService.GetRateHistory(r.Context(), asset, days)
		if err != nil {
			logger.Warn("Failed to get rate history", slog.String("asset", asset), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, history)
	}
}

// ListAssets godoc
//	@Summary		List tracked assets
//	@Description	Returns every asset the platform tracks rates for.
//	@Tags			Rates
//	@Produce		json
//	@Success		200	{object}	[]models.Asset			"Assets"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/rates/assets [get]
func (h *RateHandler) ListAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		assets, err := h.rateService.ListAssets(r.Context())
		if err != nil {
			logger.Error("Failed to list assets", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, assets)
	}
}

// UpdateRate godoc
//	@Summary		Publish today's rate (Admin)
//	@Description	Upserts today's rate for an asset and invalidates the cached value so buyers see it immediately.
//	@Tags			Rates
//	@Accept			json
//	@Produce		json
//	@Param			rate	body		models.UpdateRateRequest	true	"Asset and rate values"
//	@Success		200		{object}	models.AssetRate			"Stored rate"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Admin access required"
//	@Failure		404		{object}	response.ErrorResponse		"Unknown asset"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/rates [put]
func (h *RateHandler) UpdateRate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateRateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update rate input")
			return
		}

		rate, err := h.rateService.UpdateRate(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to update rate", slog.String("asset", req.AssetName), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Rate updated", slog.String("asset", req.AssetName), slog.Float64("ratePerUnit", req.RatePerUnit))
		response.Success(w, http.StatusOK, rate)
	}
}
