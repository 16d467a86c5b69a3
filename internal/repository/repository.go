package repository

import (
	"context"
	"time"

	"placereview-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetBalance(ctx context.Context, id int32) (int32, error)
}

type CoinRepository interface {
	// Apply inserts the ledger row and moves the user's cached balance
	// in one database transaction. The balance update is conditional:
	// a debit that would drive the balance negative applies nothing and
	// returns domain.ErrInsufficientBalance.
	Apply(ctx context.Context, tx *domain.CoinTransaction) error
	// ApplyTransfer applies the debit and credit legs atomically; a
	// failure on either leg rolls back both.
	ApplyTransfer(ctx context.Context, debit, credit *domain.CoinTransaction) error
	ListByUser(ctx context.Context, userID int32, limit, offset int32) ([]domain.CoinTransaction, error)
	// Totals aggregates the full history: earned is the sum of positive
	// amounts, spent the absolute sum of negative amounts.
	Totals(ctx context.Context, userID int32) (earned, spent int32, err error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.LocationReservation) error
	GetByID(ctx context.Context, id int32) (*domain.LocationReservation, error)
	GetActiveByUser(ctx context.Context, userID int32) (*domain.LocationReservation, error)
	GetActiveByLocationKey(ctx context.Context, locationKey string) (*domain.LocationReservation, error)
	GetActiveByUserAndLocationKey(ctx context.Context, userID int32, locationKey string) (*domain.LocationReservation, error)
	// GetRecentExpired returns the user's most recent EXPIRED
	// reservation whose expires_at is after the given cutoff, if any.
	GetRecentExpired(ctx context.Context, userID int32, since time.Time) (*domain.LocationReservation, error)
	Update(ctx context.Context, res *domain.LocationReservation) error
	// ExpireActiveBefore flips every ACTIVE reservation with
	// expires_at before the deadline to EXPIRED and returns the count.
	ExpireActiveBefore(ctx context.Context, deadline time.Time) (int32, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.LocationReservation, error)
	GetByIDAndUser(ctx context.Context, id, userID int32) (*domain.LocationReservation, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByLocationKey(ctx context.Context, locationKey string) (*domain.Review, error)
	// ListPublished returns every published review without content,
	// for similarity scans over location keys.
	ListPublished(ctx context.Context) ([]domain.Review, error)
}
