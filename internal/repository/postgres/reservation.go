package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/repository"

	"github.com/lib/pq"
)

const reservationColumns = `id, location_name, address, location_key, user_id, status, deposit_amount,
	reserved_at, expires_at, completed_at, review_id, coin_transaction_id`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.LocationReservation) error {
	query := `INSERT INTO location_reservations
	          (location_name, address, location_key, user_id, status, deposit_amount, reserved_at, expires_at, coin_transaction_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		res.LocationName, res.Address, res.LocationKey, res.UserID, res.Status,
		res.DepositAmount, res.ReservedAt, res.ExpiresAt, res.CoinTransactionID).Scan(&res.ID)
	if isUniqueViolation(err) {
		// Lost the race on one of the partial unique indexes: either
		// the location key or the one-active-per-user slot was taken
		// between the availability check and this insert.
		return domain.ErrLocationUnavailable
	}
	return err
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.LocationReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM location_reservations WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) GetActiveByUser(ctx context.Context, userID int32) (*domain.LocationReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM location_reservations WHERE user_id = $1 AND status = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, domain.ReservationStatusActive))
}

func (r *reservationRepository) GetActiveByLocationKey(ctx context.Context, locationKey string) (*domain.LocationReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM location_reservations WHERE location_key = $1 AND status = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, locationKey, domain.ReservationStatusActive))
}

func (r *reservationRepository) GetActiveByUserAndLocationKey(ctx context.Context, userID int32, locationKey string) (*domain.LocationReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM location_reservations
	          WHERE user_id = $1 AND location_key = $2 AND status = $3`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, locationKey, domain.ReservationStatusActive))
}

func (r *reservationRepository) GetRecentExpired(ctx context.Context, userID int32, since time.Time) (*domain.LocationReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM location_reservations
	          WHERE user_id = $1 AND status = $2 AND expires_at > $3
	          ORDER BY expires_at DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, domain.ReservationStatusExpired, since))
}

func (r *reservationRepository) GetByIDAndUser(ctx context.Context, id, userID int32) (*domain.LocationReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM location_reservations WHERE id = $1 AND user_id = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.LocationReservation) error {
	query := `UPDATE location_reservations
	          SET status = $1, completed_at = $2, review_id = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, res.Status, res.CompletedAt, res.ReviewID, res.ID)
	return err
}

func (r *reservationRepository) ExpireActiveBefore(ctx context.Context, deadline time.Time) (int32, error) {
	query := `UPDATE location_reservations SET status = $1 WHERE status = $2 AND expires_at < $3`
	res, err := r.db.ExecContext(ctx, query, domain.ReservationStatusExpired, domain.ReservationStatusActive, deadline)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int32(affected), err
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.LocationReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM location_reservations
	          WHERE user_id = $1 ORDER BY reserved_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.LocationReservation
	for rows.Next() {
		var res domain.LocationReservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *reservationRepository) scanOne(row *sql.Row) (*domain.LocationReservation, error) {
	res := &domain.LocationReservation{}
	err := scanReservation(row, res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func scanReservation(row rowScanner, res *domain.LocationReservation) error {
	return row.Scan(&res.ID, &res.LocationName, &res.Address, &res.LocationKey, &res.UserID,
		&res.Status, &res.DepositAmount, &res.ReservedAt, &res.ExpiresAt,
		&res.CompletedAt, &res.ReviewID, &res.CoinTransactionID)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
