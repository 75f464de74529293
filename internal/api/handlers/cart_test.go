package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/handlers"
	appErrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCartHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		cart := &models.Cart{
			ID:     1,
			UserID: 7,
			Items: []models.CartItem{
				{ID: 21, ProductID: 11, Quantity: 2, UnitPrice: 25000, TotalPrice: 50000, ProductName: "Gold Coin 10g"},
			},
			TotalAmount: 50000,
		}
		mockCartService.On("GetCart", mock.Anything, int64(7)).Return(cart, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodGet, "/cart", nil, buyerClaims(7, "buyer@example.com"))

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data models.Cart `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Data.Items, 1)
		assert.InEpsilon(t, 50000.0, resp.Data.TotalAmount, 1e-9)
	})

	t.Run("Failure - No Claims", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/cart", nil)

		cartHandler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockCartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})
}

func TestAddItemHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		reqBody := models.AddToCartRequest{ProductID: 11, Quantity: 2}
		reqBodyBytes, _ := json.Marshal(reqBody)

		cart := &models.Cart{ID: 1, UserID: 7, TotalAmount: 50000}
		mockCartService.On("AddItem", mock.Anything, int64(7), &reqBody).Return(cart, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPost, "/cart/items", reqBodyBytes, buyerClaims(7, "buyer@example.com"))

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPost, "/cart/items", []byte(`{"product_id":11}`), buyerClaims(7, "buyer@example.com"))

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		reqBody := models.AddToCartRequest{ProductID: 11, Quantity: 50}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockCartService.On("AddItem", mock.Anything, int64(7), &reqBody).
			Return(nil, appErrors.InsufficientStockError("Only 5 left in stock")).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPost, "/cart/items", reqBodyBytes, buyerClaims(7, "buyer@example.com"))

		cartHandler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeInsufficientStock)
	})
}

func TestUpdateItemHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		reqBody := models.UpdateCartItemRequest{Quantity: 3}
		reqBodyBytes, _ := json.Marshal(reqBody)

		cart := &models.Cart{ID: 1, UserID: 7, TotalAmount: 75000}
		mockCartService.On("UpdateItem", mock.Anything, int64(7), int64(21), &reqBody).Return(cart, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPatch, "/cart/items/21", reqBodyBytes, buyerClaims(7, "buyer@example.com"))
		req.SetPathValue("id", "21")

		cartHandler.UpdateItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Foreign Item", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		reqBody := models.UpdateCartItemRequest{Quantity: 3}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockCartService.On("UpdateItem", mock.Anything, int64(7), int64(99), &reqBody).
			Return(nil, appErrors.NotFoundError("Cart item not found")).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPatch, "/cart/items/99", reqBodyBytes, buyerClaims(7, "buyer@example.com"))
		req.SetPathValue("id", "99")

		cartHandler.UpdateItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRemoveItemHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		cart := &models.Cart{ID: 1, UserID: 7, TotalAmount: 0}
		mockCartService.On("RemoveItem", mock.Anything, int64(7), int64(21)).Return(cart, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodDelete, "/cart/items/21", nil, buyerClaims(7, "buyer@example.com"))
		req.SetPathValue("id", "21")

		cartHandler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestClearCartHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCartService := mocks.NewCartService(t)
		cartHandler := handlers.NewCartHandler(mockCartService)

		mockCartService.On("ClearCart", mock.Anything, int64(7)).Return(nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodDelete, "/cart", nil, buyerClaims(7, "buyer@example.com"))

		cartHandler.ClearCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Cart cleared")
	})
}
