package service

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type AddressService interface {
	ListAddresses(ctx context.Context, userID int64) ([]models.Address, error)
	GetAddress(ctx context.Context, userID, addressID int64) (*models.Address, error)
	// GetDefaultAddress returns NotFound when the user has no addresses.
	GetDefaultAddress(ctx context.Context, userID int64) (*models.Address, error)
	CreateAddress(ctx context.Context, userID int64, req *models.AddressRequest) (*models.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID int64, req *models.AddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) ListAddresses(ctx context.Context, userID int64) ([]models.Address, error) {
	addresses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	return addresses, nil
}

func (s *addressService) GetAddress(ctx context.Context, userID, addressID int64) (*models.Address, error) {
	address, err := s.repo.GetAddress(ctx, addressID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Address not found")
		}

		return nil, apperrors.DatabaseError("Failed to fetch address").WithError(err)
	}

	return address, nil
}

func (s *addressService) GetDefaultAddress(ctx context.Context, userID int64) (*models.Address, error) {
	address, err := s.repo.GetDefaultAddress(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("No default address set")
		}

		return nil, apperrors.DatabaseError("Failed to fetch default address").WithError(err)
	}

	return address, nil
}

func (s *addressService) CreateAddress(ctx context.Context, userID int64, req *models.AddressRequest) (*models.Address, error) {
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	makeDefault := req.IsDefault != nil && *req.IsDefault

	// The first saved address always becomes the default.
	if count == 0 {
		makeDefault = true
	} else if makeDefault {
		if err := s.repo.ClearDefault(ctx, userID, 0); err != nil {
			return nil, apperrors.DatabaseError("Failed to update default address").WithError(err)
		}
	}

	address := fromAddressRequest(req)
	address.UserID = userID
	address.IsDefault = makeDefault

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, apperrors.DatabaseError("Failed to save address").WithError(err)
	}

	return address, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID, addressID int64, req *models.AddressRequest) (*models.Address, error) {
	address, err := s.GetAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if req.IsDefault != nil && *req.IsDefault && !address.IsDefault {
		if err := s.repo.ClearDefault(ctx, userID, addressID); err != nil {
			return nil, apperrors.DatabaseError("Failed to update default address").WithError(err)
		}
	}

	updated := fromAddressRequest(req)
	updated.ID = address.ID
	updated.UserID = address.UserID
	updated.IsDefault = address.IsDefault
	updated.CreatedAt = address.CreatedAt

	if req.IsDefault != nil {
		updated.IsDefault = *req.IsDefault
	}

	if err := s.repo.UpdateAddress(ctx, updated); err != nil {
		return nil, apperrors.DatabaseError("Failed to update address").WithError(err)
	}

	return updated, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	address, err := s.GetAddress(ctx, userID, addressID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAddress(ctx, addressID); err != nil {
		return apperrors.DatabaseError("Failed to delete address").WithError(err)
	}

	// Deleting the default promotes the most recent remaining address.
	if address.IsDefault {
		remaining, err := s.repo.ListByUser(ctx, userID)
		if err != nil {
			return apperrors.DatabaseError("Failed to fetch addresses").WithError(err)
		}

		if len(remaining) > 0 {
			if err := s.repo.SetDefault(ctx, remaining[0].ID); err != nil {
				return apperrors.DatabaseError("Failed to update default address").WithError(err)
			}
		}
	}

	return nil
}

func fromAddressRequest(req *models.AddressRequest) *models.Address {
	return &models.Address{
		FullName:     utils.Sanitize(req.FullName),
		PhoneNumber:  req.PhoneNumber,
		AddressLine1: utils.Sanitize(req.AddressLine1),
		AddressLine2: utils.Sanitize(req.AddressLine2),
		City:         utils.Sanitize(req.City),
		State:        utils.Sanitize(req.State),
		Pincode:      req.Pincode,
	}
}
