package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/cache"
	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/pricing"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, category string, activeOnly bool, page, size int) (*models.ProductListResponse, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, c cache.Cache) ProductService {
	return &productService{repo: repo, cache: c}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:               utils.Sanitize(req.Name),
		Description:        utils.Sanitize(req.Description),
		BasePrice:          req.BasePrice,
		DiscountPercentage: req.DiscountPercentage,
		FinalPrice:         pricing.FinalPrice(req.BasePrice, req.DiscountPercentage),
		StockQuantity:      req.StockQuantity,
		WeightInGrams:      req.WeightInGrams,
		Purity:             req.Purity,
		ImageURL:           req.ImageURL,
		Category:           req.Category,
		IsActive:           true,
		IsFeatured:         req.IsFeatured,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := cache.Key(cache.ProductKeyPrefix, fmt.Sprintf("%d", id))

	var cached models.Product

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Product cache lookup failed", slog.Any("error", err))
	}

	if found {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if err := s.cache.Set(ctx, key, product, 0); err != nil {
		logger.Warn("Product cache store failed", slog.Any("error", err))
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.Name != nil {
		product.Name = utils.Sanitize(*req.Name)
	}

	if req.Description != nil {
		product.Description = utils.Sanitize(*req.Description)
	}

	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}

	if req.DiscountPercentage != nil {
		product.DiscountPercentage = *req.DiscountPercentage
	}

	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if req.WeightInGrams != nil {
		product.WeightInGrams = *req.WeightInGrams
	}

	if req.Purity != nil {
		product.Purity = *req.Purity
	}

	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	// The selling price always tracks the latest base price and discount.
	product.FinalPrice = pricing.FinalPrice(product.BasePrice, product.DiscountPercentage)

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return errors.NotFoundError("Product not found").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) ListProducts(ctx context.Context, category string, activeOnly bool, page, size int) (*models.ProductListResponse, error) {
	products, total, err := s.repo.ListProducts(ctx, category, activeOnly, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list products").WithError(err)
	}

	return &models.ProductListResponse{
		Products: products,
		Total:    total,
		Page:     page,
		Size:     size,
	}, nil
}

func (s *productService) invalidate(ctx context.Context, id int64) {
	key := cache.Key(cache.ProductKeyPrefix, fmt.Sprintf("%d", id))
	if err := s.cache.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed", slog.Any("error", err))
	}
}
