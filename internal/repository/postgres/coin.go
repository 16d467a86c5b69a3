package postgres

import (
	"context"
	"database/sql"
	"time"

	"placereview-backend/internal/domain"
	"placereview-backend/internal/repository"
)

type coinRepository struct {
	db *sql.DB
}

func NewCoinRepository(db *sql.DB) repository.CoinRepository {
	return &coinRepository{db: db}
}

func (r *coinRepository) Apply(ctx context.Context, t *domain.CoinTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := applyInTx(ctx, tx, t); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *coinRepository) ApplyTransfer(ctx context.Context, debit, credit *domain.CoinTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := applyInTx(ctx, tx, debit); err != nil {
		return err
	}
	if err := applyInTx(ctx, tx, credit); err != nil {
		return err
	}
	return tx.Commit()
}

// applyInTx moves the cached balance and appends the ledger row inside
// the caller's transaction. The balance update carries the non-negative
// condition, so a concurrent debit cannot overdraw: whichever update
// commits second sees the reduced balance and affects zero rows.
func applyInTx(ctx context.Context, tx *sql.Tx, t *domain.CoinTransaction) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE users SET coin_balance = coin_balance + $1 WHERE id = $2 AND coin_balance + $1 >= 0`,
		t.Amount, t.UserID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, t.UserID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrUserNotFound
		}
		return domain.ErrInsufficientBalance
	}

	t.CreatedAt = time.Now().UTC()
	query := `INSERT INTO coin_transactions (user_id, amount, transaction_type, description, reference_id, reference_type, created_at)
	          VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7) RETURNING id`
	return tx.QueryRowContext(ctx, query,
		t.UserID, t.Amount, t.Type, t.Description, t.ReferenceID, t.ReferenceType, t.CreatedAt).Scan(&t.ID)
}

func (r *coinRepository) ListByUser(ctx context.Context, userID int32, limit, offset int32) ([]domain.CoinTransaction, error) {
	query := `SELECT id, user_id, amount, transaction_type, description, reference_id, COALESCE(reference_type, ''), created_at
	          FROM coin_transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.CoinTransaction
	for rows.Next() {
		var t domain.CoinTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Description, &t.ReferenceID, &t.ReferenceType, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r *coinRepository) Totals(ctx context.Context, userID int32) (int32, int32, error) {
	var earned, spent int32
	query := `SELECT COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0),
	                 COALESCE(ABS(SUM(amount) FILTER (WHERE amount < 0)), 0)
	          FROM coin_transactions WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&earned, &spent)
	return earned, spent, err
}
