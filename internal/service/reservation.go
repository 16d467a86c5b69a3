package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/logger"
	"placereview-backend/internal/repository"
	"placereview-backend/internal/utils"
)

type reservationService struct {
	resRepo    repository.ReservationRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	coins      CoinService

	deposit  int32
	hold     time.Duration
	cooldown time.Duration
	now      func() time.Time
}

func NewReservationService(
	resRepo repository.ReservationRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	coins CoinService,
	depositAmount int32,
	holdHours int,
	cooldownDays int,
) ReservationService {
	return &reservationService{
		resRepo:    resRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		coins:      coins,
		deposit:    depositAmount,
		hold:       time.Duration(holdHours) * time.Hour,
		cooldown:   time.Duration(cooldownDays) * 24 * time.Hour,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CanUserReserve runs the eligibility checks in order; the first failed
// check decides the reason.
func (s *reservationService) CanUserReserve(ctx context.Context, userID int32) (*domain.ReservationEligibility, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return &domain.ReservationEligibility{CanReserve: false, Reason: "User not found"}, nil
	}
	if err != nil {
		return nil, err
	}

	if user.CoinBalance < s.deposit {
		return &domain.ReservationEligibility{
			CanReserve: false,
			Reason:     fmt.Sprintf("Insufficient coins (need %d coins minimum)", s.deposit),
		}, nil
	}

	active, err := s.resRepo.GetActiveByUser(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrReservationNotFound) {
		return nil, err
	}
	if active != nil {
		return &domain.ReservationEligibility{
			CanReserve: false,
			Reason:     "You already have an active reservation",
			ExistingReservation: &domain.ExistingReservation{
				ID:             active.ID,
				LocationName:   active.LocationName,
				HoursRemaining: active.HoursRemaining(s.now()),
			},
		}, nil
	}

	cooldownStart := s.now().Add(-s.cooldown)
	expired, err := s.resRepo.GetRecentExpired(ctx, userID, cooldownStart)
	if err != nil && !errors.Is(err, domain.ErrReservationNotFound) {
		return nil, err
	}
	if expired != nil {
		until := expired.ExpiresAt.Add(s.cooldown)
		return &domain.ReservationEligibility{
			CanReserve:    false,
			Reason:        fmt.Sprintf("Cooldown period active (%d days after losing deposit)", int(s.cooldown.Hours()/24)),
			CooldownUntil: &until,
		}, nil
	}

	return &domain.ReservationEligibility{CanReserve: true}, nil
}

func (s *reservationService) ReserveLocation(ctx context.Context, userID int32, locationName, address string) (*domain.LocationReservation, error) {
	if locationName == "" || address == "" {
		return nil, domain.NewValidationError("location name and address are required")
	}

	eligibility, err := s.CanUserReserve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !eligibility.CanReserve {
		return nil, domain.NewValidationError(eligibility.Reason)
	}

	locationKey := utils.NormalizeLocation(locationName, address)

	if _, err := s.reviewRepo.GetByLocationKey(ctx, locationKey); err == nil {
		return nil, fmt.Errorf("%w: location already has a review", domain.ErrLocationUnavailable)
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	if other, err := s.resRepo.GetActiveByLocationKey(ctx, locationKey); err == nil {
		return nil, fmt.Errorf("%w: reserved by another user until %s",
			domain.ErrLocationUnavailable, other.ExpiresAt.Format(time.RFC3339))
	} else if !errors.Is(err, domain.ErrReservationNotFound) {
		return nil, err
	}

	// Eligibility already checked the balance, but the debit can still
	// fail under concurrency; surface whatever the ledger says.
	deposit, err := s.coins.SpendCoins(ctx, userID, s.deposit,
		fmt.Sprintf("Location reservation deposit: %s", locationName), nil, "location_reservation")
	if err != nil {
		return nil, err
	}

	now := s.now()
	res := &domain.LocationReservation{
		LocationName:      locationName,
		Address:           address,
		LocationKey:       locationKey,
		UserID:            userID,
		Status:            domain.ReservationStatusActive,
		DepositAmount:     s.deposit,
		ReservedAt:        now,
		ExpiresAt:         now.Add(s.hold),
		CoinTransactionID: &deposit.ID,
	}
	if err := s.resRepo.Create(ctx, res); err != nil {
		// The deposit was already debited; refund it so the failed
		// insert leaves the ledger where it started.
		if _, refundErr := s.coins.AddTransaction(ctx, userID, s.deposit, domain.TransactionTypeRefund,
			fmt.Sprintf("Deposit refund: reservation failed for %s", locationName), nil, "location_reservation"); refundErr != nil {
			logger.Error("Failed to refund deposit after reservation insert failure",
				"user_id", userID, "location_key", locationKey, "error", refundErr)
		}
		return nil, err
	}

	logger.Info("Location reserved", "user_id", userID, "reservation_id", res.ID,
		"location_key", locationKey, "expires_at", res.ExpiresAt)
	return res, nil
}

func (s *reservationService) CompleteReservation(ctx context.Context, reservationID, reviewID int32) (*domain.LocationReservation, error) {
	res, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, domain.ErrInvalidState
	}

	now := s.now()
	res.Status = domain.ReservationStatusCompleted
	res.CompletedAt = &now
	res.ReviewID = &reviewID
	if err := s.resRepo.Update(ctx, res); err != nil {
		return nil, err
	}

	if _, err := s.coins.AddTransaction(ctx, res.UserID, res.DepositAmount, domain.TransactionTypeRefund,
		fmt.Sprintf("Deposit refund: Successfully created review for '%s'", res.LocationName),
		&reviewID, "reservation_completion"); err != nil {
		return nil, fmt.Errorf("deposit refund failed: %w", err)
	}

	logger.Info("Reservation completed", "reservation_id", res.ID, "review_id", reviewID, "user_id", res.UserID)
	return res, nil
}

// ExpireReservations sweeps every ACTIVE reservation past its deadline
// to EXPIRED. The deposit is forfeited, so there is no refund leg.
// Re-running without time passing matches zero rows.
func (s *reservationService) ExpireReservations(ctx context.Context) (int32, error) {
	count, err := s.resRepo.ExpireActiveBefore(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Expired reservations", "count", count)
	}
	return count, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID, userID int32) (*domain.LocationReservation, error) {
	res, err := s.resRepo.GetByIDAndUser(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, domain.ErrReservationNotFound
	}

	res.Status = domain.ReservationStatusCancelled
	if err := s.resRepo.Update(ctx, res); err != nil {
		return nil, err
	}

	logger.Info("Reservation cancelled, deposit forfeited",
		"reservation_id", res.ID, "user_id", userID, "deposit", res.DepositAmount)
	return res, nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID int32) ([]domain.LocationReservation, error) {
	return s.resRepo.ListByUser(ctx, userID)
}

func (s *reservationService) GetReservation(ctx context.Context, reservationID, userID int32) (*domain.LocationReservation, error) {
	return s.resRepo.GetByIDAndUser(ctx, reservationID, userID)
}
