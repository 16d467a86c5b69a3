package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (title, content, location_name, address, location_key, owner_id, is_published, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	review.CreatedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		review.Title, review.Content, review.LocationName, review.Address,
		review.LocationKey, review.OwnerID, review.IsPublished, review.CreatedAt).Scan(&review.ID)
}

func (r *reviewRepository) ListPublished(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT id, title, location_name, address, location_key, owner_id, created_at
	          FROM reviews WHERE is_published = TRUE ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		review := domain.Review{IsPublished: true}
		if err := rows.Scan(&review.ID, &review.Title, &review.LocationName, &review.Address,
			&review.LocationKey, &review.OwnerID, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) GetByLocationKey(ctx context.Context, locationKey string) (*domain.Review, error) {
	review := &domain.Review{}
	query := `SELECT id, title, content, location_name, address, location_key, owner_id, is_published, created_at
	          FROM reviews WHERE location_key = $1 AND is_published = TRUE`
	err := r.db.QueryRowContext(ctx, query, locationKey).Scan(
		&review.ID, &review.Title, &review.Content, &review.LocationName, &review.Address,
		&review.LocationKey, &review.OwnerID, &review.IsPublished, &review.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}
