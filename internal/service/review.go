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

const (
	reviewCreationReward = 50

	// A stricter threshold guards creation than the advisory pre-flight
	// check: the check warns about likely duplicates, creation only
	// rejects near-certain ones.
	checkSimilarityThreshold  = 0.8
	createSimilarityThreshold = 0.85
)

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	resRepo      repository.ReservationRepository
	reservations ReservationService
	coins        CoinService
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	resRepo repository.ReservationRepository,
	reservations ReservationService,
	coins CoinService,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		resRepo:      resRepo,
		reservations: reservations,
		coins:        coins,
	}
}

// CreateReview persists the review, then settles the author's side
// effects: an ACTIVE reservation on the same location is completed (which
// refunds its deposit) and the creation reward is credited. Both side
// effects are best effort; a failure there never takes the review down
// with it.
func (s *reviewService) CreateReview(ctx context.Context, ownerID int32, title, content, locationName, address string) (*domain.Review, error) {
	if title == "" || locationName == "" || address == "" {
		return nil, domain.NewValidationError("title, location name and address are required")
	}

	locationKey := utils.NormalizeLocation(locationName, address)

	if _, err := s.reviewRepo.GetByLocationKey(ctx, locationKey); err == nil {
		return nil, fmt.Errorf("%w: location already has a review", domain.ErrLocationUnavailable)
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	if similar, err := s.findSimilarReview(ctx, locationKey, createSimilarityThreshold); err != nil {
		return nil, err
	} else if similar != nil {
		return nil, fmt.Errorf("%w: a review for a very similar location exists: '%s'",
			domain.ErrLocationUnavailable, similar.Title)
	}

	review := &domain.Review{
		Title:        title,
		Content:      content,
		LocationName: locationName,
		Address:      address,
		LocationKey:  locationKey,
		OwnerID:      ownerID,
		IsPublished:  true,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if res, err := s.resRepo.GetActiveByUserAndLocationKey(ctx, ownerID, locationKey); err == nil {
		if _, err := s.reservations.CompleteReservation(ctx, res.ID, review.ID); err != nil {
			logger.Warn("Failed to complete reservation after review creation",
				"reservation_id", res.ID, "review_id", review.ID, "error", err)
		}
	} else if !errors.Is(err, domain.ErrReservationNotFound) {
		logger.Warn("Failed to look up reservation for new review", "review_id", review.ID, "error", err)
	}

	if _, err := s.coins.RewardUser(ctx, ownerID, reviewCreationReward,
		fmt.Sprintf("Review creation reward: '%s'", title), &review.ID, "review_creation"); err != nil {
		logger.Warn("Failed to reward coins for review creation", "review_id", review.ID, "error", err)
	}

	return review, nil
}

// CheckLocation is the pre-flight availability check: exact-key review,
// then active reservation, then a fuzzy scan for near-duplicate keys.
func (s *reviewService) CheckLocation(ctx context.Context, locationName, address string) (*domain.LocationAvailability, error) {
	if locationName == "" || address == "" {
		return nil, domain.NewValidationError("location name and address are required")
	}

	locationKey := utils.NormalizeLocation(locationName, address)
	result := &domain.LocationAvailability{LocationKey: locationKey}

	if existing, err := s.reviewRepo.GetByLocationKey(ctx, locationKey); err == nil {
		result.ConflictType = domain.ConflictExistingReview
		result.ExistingReview = reviewSummary(existing)
		return result, nil
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	if held, err := s.resRepo.GetActiveByLocationKey(ctx, locationKey); err == nil {
		now := time.Now().UTC()
		result.ConflictType = domain.ConflictReserved
		result.Reservation = &domain.ReservationSummary{
			ID:             held.ID,
			LocationName:   held.LocationName,
			ExpiresAt:      held.ExpiresAt,
			HoursRemaining: held.HoursRemaining(now),
		}
		return result, nil
	} else if !errors.Is(err, domain.ErrReservationNotFound) {
		return nil, err
	}

	similar, err := s.findSimilarReview(ctx, locationKey, checkSimilarityThreshold)
	if err != nil {
		return nil, err
	}
	if similar != nil {
		result.ConflictType = domain.ConflictSimilar
		result.SimilarReview = reviewSummary(similar)
		return result, nil
	}

	result.Available = true
	return result, nil
}

func (s *reviewService) findSimilarReview(ctx context.Context, locationKey string, threshold float64) (*domain.Review, error) {
	reviews, err := s.reviewRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if utils.IsSimilarLocation(locationKey, reviews[i].LocationKey, threshold) {
			return &reviews[i], nil
		}
	}
	return nil, nil
}

func reviewSummary(r *domain.Review) *domain.ReviewSummary {
	return &domain.ReviewSummary{
		ID:           r.ID,
		Title:        r.Title,
		LocationName: r.LocationName,
		Address:      r.Address,
	}
}
