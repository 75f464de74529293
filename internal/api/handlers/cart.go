package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the current cart
//	@Description	Returns the authenticated user's cart, creating an empty one on first access.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart				"Cart with items"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Int64("userID", claims.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds a product to the cart or merges quantities if it is already present. The unit price is snapshotted on first add.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddToCartRequest	true	"Product and quantity"
//	@Success		200		{object}	models.Cart				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or inactive product"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		409		{object}	response.ErrorResponse	"Insufficient stock"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add cart item",
				slog.Int64("userID", claims.UserID),
				slog.Int64("productID", req.ProductID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item added", slog.Int64("productID", req.ProductID), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateItem godoc
//	@Summary		Update a cart item
//	@Description	Changes the quantity of a cart item. A quantity of zero removes the item.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Cart item ID"
//	@Param			item	body		models.UpdateCartItemRequest	true	"New quantity"
//	@Success		200		{object}	models.Cart						"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse			"Item not found in this cart"
//	@Failure		409		{object}	response.ErrorResponse			"Insufficient stock"
//	@Failure		500		{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		itemID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart item id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update cart item input")
			return
		}

		cart, err := h.cartService.UpdateItem(r.Context(), claims.UserID, itemID, &req)
		if err != nil {
			logger.Error("Failed to update cart item",
				slog.Int64("userID", claims.UserID),
				slog.Int64("itemID", itemID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart item
//	@Description	Deletes a single item from the authenticated user's cart.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		int						true	"Cart item ID"
//	@Success		200	{object}	models.Cart				"Updated cart"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid item ID"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Item not found in this cart"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		itemID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart item id", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), claims.UserID, itemID)
		if err != nil {
			logger.Error("Failed to remove cart item",
				slog.Int64("userID", claims.UserID),
				slog.Int64("itemID", itemID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item removed", slog.Int64("itemID", itemID))
		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//	@Summary		Clear the cart
//	@Description	Removes every item from the authenticated user's cart.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	map[string]string		"Cart cleared"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if err := h.cartService.ClearCart(r.Context(), claims.UserID); err != nil {
			logger.Error("Failed to clear cart", slog.Int64("userID", claims.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared", slog.Int64("userID", claims.UserID))
		response.Success(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
	}
}
