package service

import (
	"context"
	"time"

	"placereview-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetBalance(ctx context.Context, id int32) (int32, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int32), args.Error(1)
}

// MockCoinRepo
type MockCoinRepo struct {
	mock.Mock
}

func (m *MockCoinRepo) Apply(ctx context.Context, tx *domain.CoinTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockCoinRepo) ApplyTransfer(ctx context.Context, debit, credit *domain.CoinTransaction) error {
	args := m.Called(ctx, debit, credit)
	return args.Error(0)
}
func (m *MockCoinRepo) ListByUser(ctx context.Context, userID int32, limit, offset int32) ([]domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoinTransaction), args.Error(1)
}
func (m *MockCoinRepo) Totals(ctx context.Context, userID int32) (int32, int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.LocationReservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.LocationReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationRepo) GetActiveByUser(ctx context.Context, userID int32) (*domain.LocationReservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationRepo) GetActiveByLocationKey(ctx context.Context, locationKey string) (*domain.LocationReservation, error) {
	args := m.Called(ctx, locationKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationRepo) GetActiveByUserAndLocationKey(ctx context.Context, userID int32, locationKey string) (*domain.LocationReservation, error) {
	args := m.Called(ctx, userID, locationKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationRepo) GetRecentExpired(ctx context.Context, userID int32, since time.Time) (*domain.LocationReservation, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, res *domain.LocationReservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) ExpireActiveBefore(ctx context.Context, deadline time.Time) (int32, error) {
	args := m.Called(ctx, deadline)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReservationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.LocationReservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationReservation), args.Error(1)
}
func (m *MockReservationRepo) GetByIDAndUser(ctx context.Context, id, userID int32) (*domain.LocationReservation, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationReservation), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) GetByLocationKey(ctx context.Context, locationKey string) (*domain.Review, error) {
	args := m.Called(ctx, locationKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ListPublished(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

// MockCoinService
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

// MockReservationService
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
