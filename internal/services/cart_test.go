package service_test

import (
	"context"
	"testing"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartServiceTest(t *testing.T) (service.CartService, *fakeCartRepo, *fakeProductRepo) {
	t.Helper()

	carts := &fakeCartRepo{}
	products := &fakeProductRepo{products: map[int64]*models.Product{
		11: {ID: 11, Name: "Gold Coin 10g", BasePrice: 26000, DiscountPercentage: 5, FinalPrice: 24700, StockQuantity: 5, IsActive: true},
		12: {ID: 12, Name: "Silver Bar 100g", FinalPrice: 10000, StockQuantity: 2, IsActive: true},
		13: {ID: 13, Name: "Retired Pendant", FinalPrice: 5000, StockQuantity: 1, IsActive: false},
	}}

	return service.NewCartService(carts, products), carts, products
}

func TestGetCart_CreatesOnFirstTouch(t *testing.T) {
	cartService, carts, _ := setupCartServiceTest(t)

	cart, err := cartService.GetCart(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), cart.UserID)
	assert.Empty(t, cart.Items)
	require.NotNil(t, carts.cart, "first access should persist an empty cart")
}

func TestAddItem(t *testing.T) {
	t.Run("Snapshots Final Price", func(t *testing.T) {
		cartService, _, _ := setupCartServiceTest(t)

		cart, err := cartService.AddItem(context.Background(), 7, &models.AddToCartRequest{ProductID: 11, Quantity: 2})

		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 24700.0, cart.Items[0].UnitPrice)
		assert.Equal(t, 49400.0, cart.Items[0].TotalPrice)
		assert.Equal(t, 49400.0, cart.TotalAmount)
	})

	t.Run("Merges Quantity For Same Product", func(t *testing.T) {
		cartService, _, products := setupCartServiceTest(t)
		ctx := context.Background()

		_, err := cartService.AddItem(ctx, 7, &models.AddToCartRequest{ProductID: 11, Quantity: 2})
		require.NoError(t, err)

		// Price change between adds must not disturb the snapshot.
		products.products[11].FinalPrice = 30000

		cart, err := cartService.AddItem(ctx, 7, &models.AddToCartRequest{ProductID: 11, Quantity: 1})
		require.NoError(t, err)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, 24700.0, cart.Items[0].UnitPrice)
		assert.Equal(t, 74100.0, cart.Items[0].TotalPrice)
	})

	t.Run("Rejects Over Stock", func(t *testing.T) {
		cartService, _, _ := setupCartServiceTest(t)

		_, err := cartService.AddItem(context.Background(), 7, &models.AddToCartRequest{ProductID: 12, Quantity: 3})

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
	})

	t.Run("Rejects Inactive Product", func(t *testing.T) {
		cartService, _, _ := setupCartServiceTest(t)

		_, err := cartService.AddItem(context.Background(), 7, &models.AddToCartRequest{ProductID: 13, Quantity: 1})

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Rejects Unknown Product", func(t *testing.T) {
		cartService, _, _ := setupCartServiceTest(t)

		_, err := cartService.AddItem(context.Background(), 7, &models.AddToCartRequest{ProductID: 999, Quantity: 1})

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("Updates Quantity And Total", func(t *testing.T) {
		cartService, _, _ := setupCartServiceTest(t)
		ctx := context.Background()

		cart, err := cartService.AddItem(ctx, 7, &models.AddToCartRequest{ProductID: 11, Quantity: 1})
		require.NoError(t, err)

		cart, err = cartService.UpdateItem(ctx, 7, cart.Items[0].ID, &models.UpdateCartItemRequest{Quantity: 3})
		require.NoError(t, err)

		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, 74100.0, cart.TotalAmount)
	})

	t.Run("Zero Quantity Removes Line", func(t *testing.T) {
		cartService, _, _ := setupCartServiceTest(t)
		ctx := context.Background()

		cart, err := cartService.AddItem(ctx, 7, &models.AddToCartRequest{ProductID: 11, Quantity: 1})
		require.NoError(t, err)

		cart, err = cartService.UpdateItem(ctx, 7, cart.Items[0].ID, &models.UpdateCartItemRequest{Quantity: 0})
		require.NoError(t, err)

		assert.Empty(t, cart.Items)
		assert.Equal(t, 0.0, cart.TotalAmount)
	})

	t.Run("Unknown Item Not Found", func(t *testing.T) {
		cartService, _, _ := setupCartServiceTest(t)

		_, err := cartService.UpdateItem(context.Background(), 7, 999, &models.UpdateCartItemRequest{Quantity: 1})

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Foreign Item Unauthorized", func(t *testing.T) {
		cartService, carts, _ := setupCartServiceTest(t)
		ctx := context.Background()

		cart, err := cartService.AddItem(ctx, 7, &models.AddToCartRequest{ProductID: 11, Quantity: 1})
		require.NoError(t, err)
		itemID := cart.Items[0].ID

		// The item stays attached to user 7's cart; user 8 gets their own.
		carts.cart = &models.Cart{ID: 2, UserID: 8}

		_, err = cartService.UpdateItem(ctx, 8, itemID, &models.UpdateCartItemRequest{Quantity: 2})

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeUnauthorized, appErr.Code, "another user's item must not read as missing")

		_, err = cartService.RemoveItem(ctx, 8, itemID)

		require.Error(t, err)
		appErr, ok = apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeUnauthorized, appErr.Code)
	})
}

func TestRemoveItemAndClear(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)
	ctx := context.Background()

	cart, err := cartService.AddItem(ctx, 7, &models.AddToCartRequest{ProductID: 11, Quantity: 1})
	require.NoError(t, err)

	_, err = cartService.AddItem(ctx, 7, &models.AddToCartRequest{ProductID: 12, Quantity: 1})
	require.NoError(t, err)

	cart, err = cartService.RemoveItem(ctx, 7, cart.Items[0].ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 10000.0, cart.TotalAmount)

	require.NoError(t, cartService.ClearCart(ctx, 7))

	cart, err = cartService.GetCart(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalAmount)
}
