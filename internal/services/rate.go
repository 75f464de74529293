package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/cache"
	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/metrics"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/pricing"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
)

type RateService interface {
	GetTodayRate(ctx context.Context, assetName string) (*models.TodayRateResponse, error)
	GetRateHistory(ctx context.Context, assetName string, days int) (*models.RateHistoryResponse, error)
	UpdateRate(ctx context.Context, req *models.UpdateRateRequest) (*models.AssetRate, error)
	ListAssets(ctx context.Context) ([]*models.Asset, error)
}

type rateService struct {
	repo     repository.RateRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewRateService(repo repository.RateRepository, c cache.Cache, todayRateTTL time.Duration) RateService {
	return &rateService{repo: repo, cache: c, cacheTTL: todayRateTTL}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *rateService) GetTodayRate(ctx context.Context, assetName string) (*models.TodayRateResponse, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := cache.Key(cache.TodayRateKeyPrefix, assetName)

	var cached models.TodayRateResponse

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Rate cache lookup failed", slog.Any("error", err))
	}

	if found {
		metrics.RateCacheHit()

		return &cached, nil
	}

	metrics.RateCacheMiss()

	asset, err := s.repo.GetAssetByName(ctx, assetName)
	if err != nil {
		return nil, apperrors.NotFoundError("Unknown asset").WithError(err)
	}

	today := dateOnly(time.Now())
	yesterday := today.AddDate(0, 0, -1)

	todayRate, err := s.rateForDay(ctx, asset, today)
	if err != nil {
		return nil, err
	}

	resp := &models.TodayRateResponse{
		AssetName:   asset.Name,
		Date:        today.Format("2006-01-02"),
		Rate22K:     todayRate.Rate22K,
		Rate24K:     todayRate.Rate24K,
		RatePerUnit: todayRate.RatePerUnit,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	yesterdayRate, err := s.repo.GetRateByAssetAndDate(ctx, asset.ID, yesterday)
	if err == nil {
		resp.Change = pricing.Round2(todayRate.RatePerUnit - yesterdayRate.RatePerUnit)
		if yesterdayRate.RatePerUnit != 0 {
			resp.ChangePercent = pricing.Round2(resp.Change / yesterdayRate.RatePerUnit * 100)
		}

		resp.Yesterday = &struct {
			Date        string  `json:"date"`
			RatePerUnit float64 `json:"rate_per_unit"`
		}{
			Date:        yesterday.Format("2006-01-02"),
			RatePerUnit: yesterdayRate.RatePerUnit,
		}
	}

	if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
		logger.Warn("Rate cache store failed", slog.Any("error", err))
	}

	return resp, nil
}

// rateForDay returns the stored rate for the day, synthesizing one with a
// small random walk off the most recent stored rate when the day is missing.
// The synthetic rate is persisted so subsequent reads agree.
func (s *rateService) rateForDay(ctx context.Context, asset *models.Asset, day time.Time) (*models.AssetRate, error) {
	rate, err := s.repo.GetRateByAssetAndDate(ctx, asset.ID, day)
	if err == nil {
		return rate, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.DatabaseError("Failed to fetch rate").WithError(err)
	}

	history, err := s.repo.ListRatesSince(ctx, asset.ID, day.AddDate(0, 0, -30))
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch rate history").WithError(err)
	}

	if len(history) == 0 {
		return nil, apperrors.NotFoundError("No rate available for " + asset.Name)
	}

	// TODO: replace with a real market data feed.
	last := history[0]
	drift := 1 + (rand.Float64()-0.5)*0.02

	synthetic := &models.AssetRate{
		AssetID:     asset.ID,
		AssetName:   asset.Name,
		Date:        day,
		Rate22K:     pricing.Round2(last.Rate22K * drift),
		Rate24K:     pricing.Round2(last.Rate24K * drift),
		RatePerUnit: pricing.Round2(last.RatePerUnit * drift),
	}

	if err := s.repo.UpsertRate(ctx, synthetic); err != nil {
		return nil, apperrors.DatabaseError("Failed to store rate").WithError(err)
	}

	return synthetic, nil
}

func (s *rateService) GetRateHistory(ctx context.Context, assetName string, days int) (*models.RateHistoryResponse, error) {
	if days < 1 || days > 365 {
		days = 30
	}

	asset, err := s.repo.GetAssetByName(ctx, assetName)
	if err != nil {
		return nil, apperrors.NotFoundError("Unknown asset").WithError(err)
	}

	from := dateOnly(time.Now()).AddDate(0, 0, -(days - 1))

	rates, err := s.repo.ListRatesSince(ctx, asset.ID, from)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch rate history").WithError(err)
	}

	return &models.RateHistoryResponse{
		AssetName: asset.Name,
		Days:      days,
		Rates:     rates,
	}, nil
}

func (s *rateService) UpdateRate(ctx context.Context, req *models.UpdateRateRequest) (*models.AssetRate, error) {
	asset, err := s.repo.GetAssetByName(ctx, req.AssetName)
	if err != nil {
		return nil, apperrors.NotFoundError("Unknown asset").WithError(err)
	}

	rate := &models.AssetRate{
		AssetID:     asset.ID,
		AssetName:   asset.Name,
		Date:        dateOnly(time.Now()),
		Rate22K:     req.Rate22K,
		Rate24K:     req.Rate24K,
		RatePerUnit: req.RatePerUnit,
	}

	if err := s.repo.UpsertRate(ctx, rate); err != nil {
		return nil, apperrors.DatabaseError("Failed to update rate").WithError(err)
	}

	// Today's cached response is now stale.
	key := cache.Key(cache.TodayRateKeyPrefix, asset.Name)
	if err := s.cache.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Rate cache invalidation failed", slog.Any("error", err))
	}

	return rate, nil
}

func (s *rateService) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to list assets").WithError(err)
	}

	return assets, nil
}
