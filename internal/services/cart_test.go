package service_test

import (
	stdErrors "errors"
	"testing"

	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/models"
	repomocks "github.com/gamerfleet/merch-backend/internal/repositories/mocks"
	service "github.com/gamerfleet/merch-backend/internal/services"
	svcmocks "github.com/gamerfleet/merch-backend/internal/services/mocks"
	"github.com/gamerfleet/merch-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartTest() (*svcmocks.IdentityService, *repomocks.CartRepository, service.CartService) {
	identitySvc := new(svcmocks.IdentityService)
	cartRepo := new(repomocks.CartRepository)

	return identitySvc, cartRepo, service.NewCartService(identitySvc, cartRepo)
}

func TestGetCartService(t *testing.T) {
	identity := testutils.NewTestIdentity()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		lines := []models.CartLine{
			{ProductID: 7, Name: "Hoodie", OriginalPrice: 49.99, Quantity: 2},
		}

		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(42), nil).Once()
		cartRepo.On("ItemsByUserID", mock.Anything, int64(42)).Return(lines, nil).Once()

		// Act
		cart, err := svc.GetCart(t.Context(), identity)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, lines, cart)
		identitySvc.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Success - Empty Cart Is Not Nil", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(42), nil).Once()
		cartRepo.On("ItemsByUserID", mock.Anything, int64(42)).Return(nil, nil).Once()

		// Act
		cart, err := svc.GetCart(t.Context(), identity)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, cart, "An empty cart must serialize as [], not null")
		assert.Empty(t, cart)
		identitySvc.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - Identity Error Passes Through", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		identityErr := errors.StorageInconsistencyError("User row missing after creation")
		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(0), identityErr).Once()

		// Act
		cart, err := svc.GetCart(t.Context(), identity)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok, "Expected an AppError")
		assert.Equal(t, errors.ErrCodeStorageInconsistency, appErr.Code, "Identity errors must not be re-wrapped")
		cartRepo.AssertNotCalled(t, "ItemsByUserID")
		identitySvc.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(42), nil).Once()
		cartRepo.On("ItemsByUserID", mock.Anything, int64(42)).
			Return(nil, stdErrors.New("connection refused")).Once()

		// Act
		_, err := svc.GetCart(t.Context(), identity)

		// Assert
		require.Error(t, err)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok, "Expected an AppError")
		assert.Equal(t, errors.ErrCodeDatabaseError, appErr.Code)
		identitySvc.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})
}

func TestAddItemService(t *testing.T) {
	identity := testutils.NewTestIdentity()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		req := &models.AddCartItemRequest{ProductID: 7, Quantity: 2}

		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(42), nil).Once()
		cartRepo.On("UpsertItem", mock.Anything, int64(42), int64(7), 2).Return(nil).Once()

		// Act
		err := svc.AddItem(t.Context(), identity, req)

		// Assert
		require.NoError(t, err)
		identitySvc.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - Non-Positive Quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -3} {
			// Arrange
			identitySvc, cartRepo, svc := setupCartTest()

			req := &models.AddCartItemRequest{ProductID: 7, Quantity: quantity}

			// Act
			err := svc.AddItem(t.Context(), identity, req)

			// Assert
			require.Error(t, err, "Quantity %d should be rejected", quantity)

			appErr, ok := errors.IsAppError(err)
			require.True(t, ok, "Expected an AppError")
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
			identitySvc.AssertNotCalled(t, "Resolve")
			cartRepo.AssertNotCalled(t, "UpsertItem")
		}
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		req := &models.AddCartItemRequest{ProductID: 7, Quantity: 2}

		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(42), nil).Once()
		cartRepo.On("UpsertItem", mock.Anything, int64(42), int64(7), 2).
			Return(stdErrors.New("database insertion error")).Once()

		// Act
		err := svc.AddItem(t.Context(), identity, req)

		// Assert
		require.Error(t, err)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok, "Expected an AppError")
		assert.Equal(t, errors.ErrCodeDatabaseError, appErr.Code)
		identitySvc.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})
}

func TestRemoveItemService(t *testing.T) {
	identity := testutils.NewTestIdentity()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(42), nil).Once()
		cartRepo.On("RemoveItem", mock.Anything, int64(42), int64(7)).Return(nil).Once()

		// Act
		err := svc.RemoveItem(t.Context(), identity, 7)

		// Assert
		require.NoError(t, err)
		identitySvc.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		identitySvc, cartRepo, svc := setupCartTest()

		identitySvc.On("Resolve", mock.Anything, identity).Return(int64(42), nil).Once()
		cartRepo.On("RemoveItem", mock.Anything, int64(42), int64(7)).
			Return(stdErrors.New("database deletion error")).Once()

		// Act
		err := svc.RemoveItem(t.Context(), identity, 7)

		// Assert
		require.Error(t, err)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok, "Expected an AppError")
		assert.Equal(t, errors.ErrCodeDatabaseError, appErr.Code)
		identitySvc.AssertExpectations(t)
		cartRepo.AssertExpectations(t)
	})
}
