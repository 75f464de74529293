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

func TestCreateOrderHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		reqBody := models.CreateOrderRequest{
			ShippingAddress: "14 MG Road, Bengaluru",
			PaymentMethod:   "card",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		expected := &models.Order{
			OrderID:     "ORD-1A2B3C4D",
			UserID:      7,
			TotalAmount: 70800,
			Status:      models.OrderStatusPending,
		}
		mockOrderService.On("CreateOrder", mock.Anything, int64(7), "buyer@example.com", &reqBody).
			Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPost, "/orders", reqBodyBytes, buyerClaims(7, "buyer@example.com"))

		orderHandler.CreateOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Success bool         `json:"success"`
			Data    models.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "ORD-1A2B3C4D", resp.Data.OrderID)
	})

	t.Run("Failure - No Claims", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		reqBody, _ := json.Marshal(models.CreateOrderRequest{ShippingAddress: "x", PaymentMethod: "card"})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/orders", reqBody)

		orderHandler.CreateOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockOrderService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		reqBody := models.CreateOrderRequest{ShippingAddress: "14 MG Road", PaymentMethod: "card"}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockOrderService.On("CreateOrder", mock.Anything, int64(7), "buyer@example.com", &reqBody).
			Return(nil, appErrors.InsufficientStockError("Not enough stock for Gold Coin 10g")).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPost, "/orders", reqBodyBytes, buyerClaims(7, "buyer@example.com"))

		orderHandler.CreateOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeInsufficientStock)
	})
}

func TestGetOrderHandler(t *testing.T) {
	t.Run("Success - Buyer", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		expected := &models.Order{OrderID: "ORD-1A2B3C4D", UserID: 7}
		mockOrderService.On("GetOrder", mock.Anything, int64(7), false, "ORD-1A2B3C4D").
			Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodGet, "/orders/ORD-1A2B3C4D", nil, buyerClaims(7, "buyer@example.com"))
		req.SetPathValue("code", "ORD-1A2B3C4D")

		orderHandler.GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Admin Scope", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		expected := &models.Order{OrderID: "ORD-1A2B3C4D", UserID: 7}
		mockOrderService.On("GetOrder", mock.Anything, int64(1), true, "ORD-1A2B3C4D").
			Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodGet, "/orders/ORD-1A2B3C4D", nil, adminClaims(1))
		req.SetPathValue("code", "ORD-1A2B3C4D")

		orderHandler.GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("GetOrder", mock.Anything, int64(7), false, "ORD-DEADBEEF").
			Return(nil, appErrors.NotFoundError("Order not found")).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodGet, "/orders/ORD-DEADBEEF", nil, buyerClaims(7, "buyer@example.com"))
		req.SetPathValue("code", "ORD-DEADBEEF")

		orderHandler.GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		reqBody := models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped}
		reqBodyBytes, _ := json.Marshal(reqBody)

		expected := &models.Order{OrderID: "ORD-1A2B3C4D", Status: models.OrderStatusShipped}
		mockOrderService.On("UpdateOrderStatus", mock.Anything, "ORD-1A2B3C4D", &reqBody).
			Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPatch, "/admin/orders/ORD-1A2B3C4D/status", reqBodyBytes, adminClaims(1))
		req.SetPathValue("code", "ORD-1A2B3C4D")

		orderHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), string(models.OrderStatusShipped))
	})

	t.Run("Failure - Invalid Status Value", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPatch, "/admin/orders/ORD-1A2B3C4D/status",
			[]byte(`{"status":"TELEPORTED"}`), adminClaims(1))
		req.SetPathValue("code", "ORD-1A2B3C4D")

		orderHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockOrderService.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestValidateCouponHandler(t *testing.T) {
	t.Run("Success - Valid Coupon", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		reqBody := models.ValidateCouponRequest{CouponCode: "FESTIVE10", OrderAmount: 60000}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockOrderService.On("ValidateCoupon", mock.Anything, &reqBody).
			Return(&models.ValidateCouponResponse{Valid: true, DiscountAmount: 6000}, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPost, "/coupons/validate", reqBodyBytes, buyerClaims(7, "buyer@example.com"))

		orderHandler.ValidateCoupon().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data models.ValidateCouponResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Valid)
		assert.InEpsilon(t, 6000.0, resp.Data.DiscountAmount, 1e-9)
	})

	t.Run("Success - Invalid Coupon Reported, Not Errored", func(t *testing.T) {
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		reqBody := models.ValidateCouponRequest{CouponCode: "EXPIRED5", OrderAmount: 60000}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockOrderService.On("ValidateCoupon", mock.Anything, &reqBody).
			Return(&models.ValidateCouponResponse{Valid: false, Message: "Coupon has expired"}, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodPost, "/coupons/validate", reqBodyBytes, buyerClaims(7, "buyer@example.com"))

		orderHandler.ValidateCoupon().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Coupon has expired")
	})
}
