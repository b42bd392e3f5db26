package ledgerservice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	GetProfileForUpdate(ctx context.Context, userID int) (*domain.Profile, error)
	GetBalance(ctx context.Context, userID int) (float64, error)
	UpdateBalance(ctx context.Context, userID int, balance float64) error
	InsertTransaction(ctx context.Context, tx *domain.BalanceTransaction) (*domain.BalanceTransaction, error)
	HasTransaction(ctx context.Context, source string, referenceID int) (bool, error)
	GetSummary(ctx context.Context, userID int) (*domain.BalanceSummary, error)
	ListTransactions(ctx context.Context, userID int) ([]domain.BalanceTransaction, error)
}

const (
	// CreditType increases the user balance.
	CreditType string = "credit"
	// DebitType decreases the user balance.
	DebitType string = "debit"

	SourceReferralCommission string = "referral_commission"
	SourceCoursePurchase     string = "course_purchase"
	SourceWithdrawal         string = "withdrawal"
	SourceAdminAdjustment    string = "admin_adjustment"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUserNotFound      = errors.New("user not found")
)

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Apply is the only path that mutates a balance. The row lock taken by
// GetProfileForUpdate serializes concurrent mutations for the same user, so
// balance_before/balance_after are always consistent with the profile balance.
func (s *Service) Apply(ctx context.Context, userID int, amount float64, txType, source string, referenceID int) (*domain.BalanceTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var applied *domain.BalanceTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.repo.GetProfileForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrUserNotFound
		}

		balanceAfter := profile.Balance + amount
		if txType == DebitType {
			if profile.Balance < amount {
				return ErrInsufficientFunds
			}
			balanceAfter = profile.Balance - amount
		}

		tx := &domain.BalanceTransaction{
			UserID:        userID,
			Amount:        amount,
			Type:          txType,
			Source:        source,
			ReferenceID:   referenceID,
			BalanceBefore: profile.Balance,
			BalanceAfter:  balanceAfter,
		}
		if _, err := s.repo.InsertTransaction(ctx, tx); err != nil {
			return err
		}
		if err := s.repo.UpdateBalance(ctx, userID, balanceAfter); err != nil {
			return err
		}
		applied = tx
		return nil
	})
	if err != nil {
		zap.L().Error("failed to apply balance transaction",
			zap.Int("user_id", userID), zap.String("source", source), zap.Error(err))
		return nil, err
	}

	zap.L().Info("balance transaction applied",
		zap.Int("user_id", userID),
		zap.String("type", applied.Type),
		zap.String("source", applied.Source),
		zap.Float64("amount", applied.Amount))
	return applied, nil
}

// AdminAdjust applies a manual correction on behalf of an admin. The admin id
// is recorded as the transaction reference.
func (s *Service) AdminAdjust(ctx context.Context, adminID, userID int, amount float64, txType string) (*domain.BalanceTransaction, error) {
	tx, err := s.Apply(ctx, userID, amount, txType, SourceAdminAdjustment, adminID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("admin balance adjustment", zap.Int("admin_id", adminID), zap.Int("user_id", userID))
	return tx, nil
}

func (s *Service) Balance(ctx context.Context, userID int) (float64, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *Service) GetSummary(ctx context.Context, userID int) (*domain.BalanceSummary, error) {
	summary, err := s.repo.GetSummary(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance summary", zap.Error(err))
		return nil, err
	}
	if summary == nil {
		return nil, ErrUserNotFound
	}
	return summary, nil
}

func (s *Service) HasTransaction(ctx context.Context, source string, referenceID int) (bool, error) {
	return s.repo.HasTransaction(ctx, source, referenceID)
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.BalanceTransaction, error) {
	transactions, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list balance transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
