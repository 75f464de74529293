package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAddressRepo struct {
	addresses []*models.Address
	nextID    int64
}

func (f *fakeAddressRepo) CreateAddress(_ context.Context, address *models.Address) error {
	f.nextID++
	address.ID = f.nextID
	address.CreatedAt = time.Now()
	f.addresses = append(f.addresses, address)

	return nil
}

func (f *fakeAddressRepo) GetAddress(_ context.Context, addressID, userID int64) (*models.Address, error) {
	for _, a := range f.addresses {
		if a.ID == addressID && a.UserID == userID {
			c := *a

			return &c, nil
		}
	}

	return nil, sql.ErrNoRows
}

func (f *fakeAddressRepo) GetDefaultAddress(_ context.Context, userID int64) (*models.Address, error) {
	for _, a := range f.addresses {
		if a.UserID == userID && a.IsDefault {
			c := *a

			return &c, nil
		}
	}

	return nil, sql.ErrNoRows
}

func (f *fakeAddressRepo) ListByUser(_ context.Context, userID int64) ([]models.Address, error) {
	var defaults, rest []models.Address

	// Newest first within each group, default group leading.
	for i := len(f.addresses) - 1; i >= 0; i-- {
		a := f.addresses[i]
		if a.UserID != userID {
			continue
		}

		if a.IsDefault {
			defaults = append(defaults, *a)
		} else {
			rest = append(rest, *a)
		}
	}

	return append(defaults, rest...), nil
}

func (f *fakeAddressRepo) CountByUser(_ context.Context, userID int64) (int64, error) {
	var count int64

	for _, a := range f.addresses {
		if a.UserID == userID {
			count++
		}
	}

	return count, nil
}

func (f *fakeAddressRepo) UpdateAddress(_ context.Context, address *models.Address) error {
	for i, a := range f.addresses {
		if a.ID == address.ID {
			c := *address
			f.addresses[i] = &c

			return nil
		}
	}

	return sql.ErrNoRows
}

func (f *fakeAddressRepo) DeleteAddress(_ context.Context, addressID int64) error {
	for i, a := range f.addresses {
		if a.ID == addressID {
			f.addresses = append(f.addresses[:i], f.addresses[i+1:]...)

			return nil
		}
	}

	return sql.ErrNoRows
}

func (f *fakeAddressRepo) ClearDefault(_ context.Context, userID, exceptID int64) error {
	for _, a := range f.addresses {
		if a.UserID == userID && a.ID != exceptID {
			a.IsDefault = false
		}
	}

	return nil
}

func (f *fakeAddressRepo) SetDefault(_ context.Context, addressID int64) error {
	for _, a := range f.addresses {
		if a.ID == addressID {
			a.IsDefault = true

			return nil
		}
	}

	return sql.ErrNoRows
}

func testAddressRequest(fullName string) *models.AddressRequest {
	return &models.AddressRequest{
		FullName:     fullName,
		PhoneNumber:  "9876543210",
		AddressLine1: "12 Temple Street",
		City:         "Chennai",
		State:        "Tamil Nadu",
		Pincode:      "600001",
	}
}

func TestCreateAddress(t *testing.T) {
	t.Run("First Address Becomes Default", func(t *testing.T) {
		addressService := service.NewAddressService(&fakeAddressRepo{})

		address, err := addressService.CreateAddress(context.Background(), 7, testAddressRequest("Asha Rao"))

		require.NoError(t, err)
		assert.True(t, address.IsDefault)
		assert.Equal(t, int64(7), address.UserID)
	})

	t.Run("Marking Default Unmarks The Others", func(t *testing.T) {
		addressService := service.NewAddressService(&fakeAddressRepo{})
		ctx := context.Background()

		first, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao"))
		require.NoError(t, err)

		second := testAddressRequest("Asha Rao (office)")
		makeDefault := true
		second.IsDefault = &makeDefault

		created, err := addressService.CreateAddress(ctx, 7, second)
		require.NoError(t, err)
		assert.True(t, created.IsDefault)

		reloaded, err := addressService.GetAddress(ctx, 7, first.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.IsDefault, "only one default address per user")
	})

	t.Run("Second Address Stays Non Default", func(t *testing.T) {
		addressService := service.NewAddressService(&fakeAddressRepo{})
		ctx := context.Background()

		_, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao"))
		require.NoError(t, err)

		created, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao (office)"))
		require.NoError(t, err)
		assert.False(t, created.IsDefault)
	})
}

func TestGetAddress_ScopedToOwner(t *testing.T) {
	addressService := service.NewAddressService(&fakeAddressRepo{})
	ctx := context.Background()

	address, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao"))
	require.NoError(t, err)

	_, err = addressService.GetAddress(ctx, 8, address.ID)

	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestGetDefaultAddress_NoneSet(t *testing.T) {
	addressService := service.NewAddressService(&fakeAddressRepo{})

	_, err := addressService.GetDefaultAddress(context.Background(), 7)

	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestUpdateAddress(t *testing.T) {
	addressService := service.NewAddressService(&fakeAddressRepo{})
	ctx := context.Background()

	first, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao"))
	require.NoError(t, err)

	second, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao (office)"))
	require.NoError(t, err)

	req := testAddressRequest("Asha Rao (office)")
	makeDefault := true
	req.IsDefault = &makeDefault

	updated, err := addressService.UpdateAddress(ctx, 7, second.ID, req)
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	reloaded, err := addressService.GetAddress(ctx, 7, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestDeleteAddress(t *testing.T) {
	t.Run("Deleting The Default Promotes Another", func(t *testing.T) {
		repo := &fakeAddressRepo{}
		addressService := service.NewAddressService(repo)
		ctx := context.Background()

		first, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao"))
		require.NoError(t, err)

		second, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao (office)"))
		require.NoError(t, err)

		require.NoError(t, addressService.DeleteAddress(ctx, 7, first.ID))

		promoted, err := addressService.GetDefaultAddress(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, second.ID, promoted.ID)
	})

	t.Run("Foreign Address Not Found", func(t *testing.T) {
		addressService := service.NewAddressService(&fakeAddressRepo{})
		ctx := context.Background()

		address, err := addressService.CreateAddress(ctx, 7, testAddressRequest("Asha Rao"))
		require.NoError(t, err)

		err = addressService.DeleteAddress(ctx, 8, address.ID)

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})
}
