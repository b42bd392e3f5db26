package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetProfileForUpdate locks the profile row so concurrent balance mutations
// for the same user serialize on the row lock.
func (r *Repository) GetProfileForUpdate(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `
        SELECT id, balance
        FROM profiles
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID)

	var profile domain.Profile
	err := row.Scan(&profile.ID, &profile.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock profile for update", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (float64, error) {
	query := `
        SELECT balance
        FROM profiles
        WHERE id = $1
    `
	var balance float64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, pgx.ErrNoRows
	}
	if err != nil {
		zap.L().Error("can't get profile balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, userID int, balance float64) error {
	query := `
        UPDATE profiles
        SET balance = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("can't update profile balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) InsertTransaction(ctx context.Context, tx *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
	query := `
        INSERT INTO balance_transactions (user_id, amount, type, source, reference_id, balance_before, balance_after)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Type, tx.Source, tx.ReferenceID, tx.BalanceBefore, tx.BalanceAfter).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't insert balance transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) HasTransaction(ctx context.Context, source string, referenceID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM balance_transactions
            WHERE source = $1 AND reference_id = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, source, referenceID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check balance transaction existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) GetSummary(ctx context.Context, userID int) (*domain.BalanceSummary, error) {
	query := `
        SELECT p.balance,
               COALESCE((SELECT SUM(amount) FROM balance_transactions WHERE user_id = p.id AND type = 'credit'), 0),
               COALESCE((SELECT SUM(amount) FROM balance_transactions WHERE user_id = p.id AND type = 'debit' AND source = 'withdrawal'), 0),
               COALESCE((SELECT SUM(amount) FROM withdrawal_requests WHERE user_id = p.id AND status = 'pending'), 0)
        FROM profiles p
        WHERE p.id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var summary domain.BalanceSummary
	err := row.Scan(&summary.Balance, &summary.TotalEarned, &summary.TotalWithdrawn, &summary.PendingWithdrawal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get balance summary", zap.Error(err))
		return nil, err
	}
	return &summary, nil
}

func (r *Repository) ListTransactions(ctx context.Context, userID int) ([]domain.BalanceTransaction, error) {
	query := `
        SELECT id, user_id, amount, type, source, reference_id, balance_before, balance_after, created_at
        FROM balance_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list balance transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.BalanceTransaction
	for rows.Next() {
		var tx domain.BalanceTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Source, &tx.ReferenceID, &tx.BalanceBefore, &tx.BalanceAfter, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan balance transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
