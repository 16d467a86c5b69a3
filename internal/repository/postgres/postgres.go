package postgres

import (
	"database/sql"

	"placereview-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CoinRepository
	repository.ReservationRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		CoinRepository:        NewCoinRepository(db),
		ReservationRepository: NewReservationRepository(db),
		ReviewRepository:      NewReviewRepository(db),
	}
}
