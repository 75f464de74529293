package service

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/pricing"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, userID int64) (*models.Cart, error)
	AddItem(ctx context.Context, userID int64, req *models.AddToCartRequest) (*models.Cart, error)
	UpdateItem(ctx context.Context, userID int64, itemID int64, req *models.UpdateCartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID int64, itemID int64) (*models.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) CartService {
	return &cartService{carts: carts, products: products}
}

// GetCart returns the user's cart, creating an empty one on first touch.
func (s *cartService) GetCart(ctx context.Context, userID int64) (*models.Cart, error) {
	cart, err := s.carts.GetCartByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.DatabaseError("Failed to fetch cart").WithError(err)
		}

		cart = &models.Cart{UserID: userID}
		if err := s.carts.CreateCart(ctx, cart); err != nil {
			return nil, apperrors.DatabaseError("Failed to create cart").WithError(err)
		}
	}

	items, err := s.carts.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	cart.Items = items

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, userID int64, req *models.AddToCartRequest) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, apperrors.NotFoundError("Product not found").WithError(err)
	}

	if !product.IsActive {
		return nil, apperrors.BadRequestError("Product is not available")
	}

	existing, err := s.carts.GetItemByProduct(ctx, cart.ID, req.ProductID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	newQuantity := req.Quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}

	if newQuantity > product.StockQuantity {
		return nil, apperrors.InsufficientStockError("Requested quantity exceeds available stock")
	}

	if existing != nil {
		// The unit price snapshot from the first add is kept.
		existing.Quantity = newQuantity
		existing.TotalPrice = pricing.LineTotal(existing.UnitPrice, newQuantity)

		if err := s.carts.UpdateItem(ctx, existing); err != nil {
			return nil, apperrors.DatabaseError("Failed to update cart item").WithError(err)
		}
	} else {
		item := &models.CartItem{
			CartID:     cart.ID,
			ProductID:  product.ID,
			Quantity:   req.Quantity,
			UnitPrice:  product.FinalPrice,
			TotalPrice: pricing.LineTotal(product.FinalPrice, req.Quantity),
		}

		if err := s.carts.InsertItem(ctx, item); err != nil {
			return nil, apperrors.DatabaseError("Failed to add cart item").WithError(err)
		}
	}

	return s.refreshTotal(ctx, cart)
}

func (s *cartService) UpdateItem(ctx context.Context, userID int64, itemID int64, req *models.UpdateCartItemRequest) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.ownedItem(ctx, cart, itemID)
	if err != nil {
		return nil, err
	}

	// Zero or negative quantity removes the line.
	if req.Quantity <= 0 {
		if err := s.carts.DeleteItem(ctx, itemID); err != nil {
			return nil, apperrors.DatabaseError("Failed to remove cart item").WithError(err)
		}

		return s.refreshTotal(ctx, cart)
	}

	product, err := s.products.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, apperrors.NotFoundError("Product not found").WithError(err)
	}

	if req.Quantity > product.StockQuantity {
		return nil, apperrors.InsufficientStockError("Requested quantity exceeds available stock")
	}

	item.Quantity = req.Quantity
	item.TotalPrice = pricing.LineTotal(item.UnitPrice, req.Quantity)

	if err := s.carts.UpdateItem(ctx, item); err != nil {
		return nil, apperrors.DatabaseError("Failed to update cart item").WithError(err)
	}

	return s.refreshTotal(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, userID int64, itemID int64) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedItem(ctx, cart, itemID); err != nil {
		return nil, err
	}

	if err := s.carts.DeleteItem(ctx, itemID); err != nil {
		return nil, apperrors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return s.refreshTotal(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, userID int64) error {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.carts.DeleteItemsByCart(ctx, cart.ID); err != nil {
		return apperrors.DatabaseError("Failed to clear cart").WithError(err)
	}

	if err := s.carts.UpdateTotal(ctx, cart.ID, 0); err != nil {
		return apperrors.DatabaseError("Failed to reset cart total").WithError(err)
	}

	return nil
}

// ownedItem loads a cart item and rejects items held by another user's cart.
func (s *cartService) ownedItem(ctx context.Context, cart *models.Cart, itemID int64) (*models.CartItem, error) {
	item, err := s.carts.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Cart item not found")
		}

		return nil, apperrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	if item.CartID != cart.ID {
		return nil, apperrors.UnauthorizedError("Unauthorized access to cart item")
	}

	return item, nil
}

// refreshTotal recomputes the cart total from its lines and reloads the cart.
func (s *cartService) refreshTotal(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	items, err := s.carts.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}

	total = pricing.Round2(total)

	if err := s.carts.UpdateTotal(ctx, cart.ID, total); err != nil {
		return nil, apperrors.DatabaseError("Failed to update cart total").WithError(err)
	}

	cart.Items = items
	cart.TotalAmount = total

	return cart, nil
}
