package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, coin_balance, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	u.CreatedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.CoinBalance, u.CreatedAt).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, password_hash, coin_balance, created_at FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CoinBalance, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, password_hash, coin_balance, created_at FROM users WHERE LOWER(username) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CoinBalance, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetBalance(ctx context.Context, id int32) (int32, error) {
	var balance int32
	query := `SELECT coin_balance FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	return balance, err
}
