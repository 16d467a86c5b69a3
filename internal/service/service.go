package service

import (
	"context"

	"placereview-backend/internal/domain"
)

type CoinService interface {
	GetUserBalance(ctx context.Context, userID int32) (*domain.CoinBalance, error)
	AddTransaction(ctx context.Context, userID, amount int32, txType domain.TransactionType, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error)
	RewardUser(ctx context.Context, userID, amount int32, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error)
	SpendCoins(ctx context.Context, userID, amount int32, description string, referenceID *int32, referenceType string) (*domain.CoinTransaction, error)
	CanAfford(ctx context.Context, userID, amount int32) (bool, error)
	TransferCoins(ctx context.Context, fromUserID, toUserID, amount int32, description string) (*domain.CoinTransaction, *domain.CoinTransaction, error)
	ListTransactions(ctx context.Context, userID, limit, offset int32) ([]domain.CoinTransaction, error)
	PurchasePackage(ctx context.Context, userID int32, packageID string) (*domain.CoinTransaction, error)
}

type ReservationService interface {
	CanUserReserve(ctx context.Context, userID int32) (*domain.ReservationEligibility, error)
	ReserveLocation(ctx context.Context, userID int32, locationName, address string) (*domain.LocationReservation, error)
	CompleteReservation(ctx context.Context, reservationID, reviewID int32) (*domain.LocationReservation, error)
	ExpireReservations(ctx context.Context) (int32, error)
	CancelReservation(ctx context.Context, reservationID, userID int32) (*domain.LocationReservation, error)
	GetUserReservations(ctx context.Context, userID int32) ([]domain.LocationReservation, error)
	GetReservation(ctx context.Context, reservationID, userID int32) (*domain.LocationReservation, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, ownerID int32, title, content, locationName, address string) (*domain.Review, error)
	CheckLocation(ctx context.Context, locationName, address string) (*domain.LocationAvailability, error)
}

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}
