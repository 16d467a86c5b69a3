package http

import (
	"context"

	"placereview-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockCoinService struct {
	mock.Mock
}

func (m *MockCoinService) GetUserBalance(ctx context.Context, userID int32) (*domain.CoinBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinBalance), args.Error(1)
}
func (m *MockCoinService) AddTransaction(ctx context.Context, userID, amount int32, txType domain.TransactionType, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, amount, txType, description, referenceID, referenceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinTransaction), args.Error(1)
}
func (m *MockCoinService) RewardUser(ctx context.Context, userID, amount int32, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, amount, description, referenceID, referenceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinTransaction), args.Error(1)
}
func (m *MockCoinService) SpendCoins(ctx context.Context, userID, amount int32, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, amount, description, referenceID, referenceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinTransaction), args.Error(1)
}
func (m *MockCoinService) CanAfford(ctx context.Context, userID, amount int32) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}
func (m *MockCoinService) TransferCoins(ctx context.Context, fromUserID, toUserID, amount int32, description string) (*domain.CoinTransaction, *domain.CoinTransaction, error) {
	args := m.Called(ctx, fromUserID, toUserID, amount, description)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.CoinTransaction), args.Get(1).(*domain.CoinTransaction), args.Error(2)
}
func (m *MockCoinService) ListTransactions(ctx context.Context, userID, limit, offset int32) ([]domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoinTransaction), args.Error(1)
}
func (m *MockCoinService) PurchasePackage(ctx context.Context, userID int32, packageID string) (*domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinTransaction), args.Error(1)
}

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) CanUserReserve(ctx context.Context, userID int32) (*domain.ReservationEligibility, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationEligibility), args.Error(1)
}
func (m *MockReservationService) ReserveLocation(ctx context.Context, userID int32, locationName, address string) (*domain.LocationReservation, error) {
	args := m.Called(ctx, userID, locationName, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationService) CompleteReservation(ctx context.Context, reservationID, reviewID int32) (*domain.LocationReservation, error) {
	args := m.Called(ctx, reservationID, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationService) ExpireReservations(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReservationService) CancelReservation(ctx context.Context, reservationID, userID int32) (*domain.LocationReservation, error) {
	args := m.Called(ctx, reservationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationService) GetUserReservations(ctx context.Context, userID int32) ([]domain.LocationReservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationReservation), args.Error(1)
}
func (m *MockReservationService) GetReservation(ctx context.Context, reservationID, userID int32) (*domain.LocationReservation, error) {
	args := m.Called(ctx, reservationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
