package withdrawalrepo

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

const withdrawalColumns = `id, user_id, amount, bank_account, status, admin_notes, processed_at, processed_by, created_at`

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var wd domain.WithdrawalRequest
	err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.BankAccount, &wd.Status, &wd.AdminNotes, &wd.ProcessedAt, &wd.ProcessedBy, &wd.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) CreateRequest(ctx context.Context, wd *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (user_id, amount, bank_account, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, wd.UserID, wd.Amount, wd.BankAccount, wd.Status).
		Scan(&wd.ID, &wd.CreatedAt)
	if err != nil {
		zap.L().Error("can't create withdrawal request", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) FindByID(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE id = $1
    `
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) FindPendingByUser(ctx context.Context, userID int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE user_id = $1 AND status = 'pending'
    `
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("can't find pending withdrawal request", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

// MarkDecided is a check-and-set transition from pending that stamps the
// deciding admin. It reports false when the request was already decided.
func (r *Repository) MarkDecided(ctx context.Context, requestID int, status string, adminID int, notes string) (bool, error) {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, admin_notes = NULLIF($2, ''), processed_at = now(), processed_by = $3
        WHERE id = $4 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, notes, adminID, requestID)
	if err != nil {
		zap.L().Error("can't mark withdrawal request decided", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE status = $1 OR $1 = ''
        ORDER BY created_at ASC
    `
	return r.list(ctx, query, status)
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		var wd domain.WithdrawalRequest
		err := rows.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.BankAccount, &wd.Status, &wd.AdminNotes, &wd.ProcessedAt, &wd.ProcessedBy, &wd.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, nil
}
