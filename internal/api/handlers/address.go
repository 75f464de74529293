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

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: validator.New()}
}

// ListAddresses godoc
//	@Summary		List saved addresses
//	@Description	Returns the authenticated user's address book, default address first.
//	@Tags			Addresses
//	@Produce		json
//	@Success		200	{array}		models.Address			"Addresses"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/addresses [get]
func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list addresses", slog.Int64("userID", claims.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// GetDefaultAddress godoc
//	@Summary		Get the default address
//	@Description	Returns the authenticated user's default shipping address.
//	@Tags			Addresses
//	@Produce		json
//	@Success		200	{object}	models.Address			"Default address"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"No default address set"
//	@Security		BearerAuth
//	@Router			/addresses/default [get]
func (h *AddressHandler) GetDefaultAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		address, err := h.addressService.GetDefaultAddress(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// GetAddress godoc
//	@Summary		Get a saved address
//	@Description	Returns one of the authenticated user's saved addresses by id.
//	@Tags			Addresses
//	@Produce		json
//	@Param			id	path		int						true	"Address ID"
//	@Success		200	{object}	models.Address			"Address"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid address ID"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [get]
func (h *AddressHandler) GetAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addressID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid address ID"))
			return
		}

		address, err := h.addressService.GetAddress(r.Context(), claims.UserID, addressID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// CreateAddress godoc
//	@Summary		Save a new address
//	@Description	Adds an address to the authenticated user's address book. The first saved address becomes the default.
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.AddressRequest	true	"Address details"
//	@Success		201		{object}	models.Address			"Saved address"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/addresses [post]
func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address create attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to save address", slog.Int64("userID", claims.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address saved", slog.Int64("userID", claims.UserID), slog.Int64("addressID", address.ID))
		response.Success(w, http.StatusCreated, address)
	}
}

// UpdateAddress godoc
//	@Summary		Update a saved address
//	@Description	Replaces one of the authenticated user's saved addresses. Marking it default unmarks the others.
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Address ID"
//	@Param			address	body		models.AddressRequest	true	"Address details"
//	@Success		200		{object}	models.Address			"Updated address"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [put]
func (h *AddressHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addressID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid address ID"))
			return
		}

		var req models.AddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address input")
			return
		}

		address, err := h.addressService.UpdateAddress(r.Context(), claims.UserID, addressID, &req)
		if err != nil {
			logger.Error("Failed to update address", slog.Int64("addressID", addressID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// DeleteAddress godoc
//	@Summary		Delete a saved address
//	@Description	Removes an address from the authenticated user's address book. Deleting the default promotes the most recent remaining address.
//	@Tags			Addresses
//	@Produce		json
//	@Param			id	path		int						true	"Address ID"
//	@Success		200	{object}	map[string]string		"Address deleted"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid address ID"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized address delete attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addressID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid address ID"))
			return
		}

		if err := h.addressService.DeleteAddress(r.Context(), claims.UserID, addressID); err != nil {
			logger.Error("Failed to delete address", slog.Int64("addressID", addressID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Address deleted", slog.Int64("userID", claims.UserID), slog.Int64("addressID", addressID))
		response.Success(w, http.StatusOK, map[string]string{"message": "Address deleted"})
	}
}
