package withdrawalservice

import (
	"context"
	"errors"
	"strings"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/pg"
	"github.com/coursemart/coursemart/internal/service/ledgerservice"
	"go.uber.org/zap"
)

type Repo interface {
	CreateRequest(ctx context.Context, wd *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByID(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error)
	FindPendingByUser(ctx context.Context, userID int) (*domain.WithdrawalRequest, error)
	MarkDecided(ctx context.Context, requestID int, status string, adminID int, notes string) (bool, error)
	ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
}

type Ledger interface {
	Apply(ctx context.Context, userID int, amount float64, txType, source string, referenceID int) (*domain.BalanceTransaction, error)
	Balance(ctx context.Context, userID int) (float64, error)
}

type ProfileRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.Profile, error)
	ListAdminLogins(ctx context.Context) ([]string, error)
}

type Mailer interface {
	SendWithdrawalApproved(email string, amount float64)
	SendWithdrawalRejected(email string, amount float64, notes string)
	SendAdminAlert(emails []string, subject, text string)
}

const (
	PendingStatus   string = "pending"
	ApprovedStatus  string = "approved"
	RejectedStatus  string = "rejected"
	CompletedStatus string = "completed"
)

var (
	ErrBelowMinimum      = errors.New("amount is below the withdrawal minimum")
	ErrInsufficientFunds = ledgerservice.ErrInsufficientFunds
	ErrPendingExists     = errors.New("pending withdrawal request already exists")
	ErrRequestNotFound   = errors.New("withdrawal request not found")
	ErrRequestNotPending = errors.New("withdrawal request is not pending")
	ErrNotesRequired     = errors.New("admin notes are required")
)

type Service struct {
	repo          Repo
	ledger        Ledger
	profileRepo   ProfileRepo
	txManager     pg.TXManager
	mailer        Mailer
	minWithdrawal float64
}

func New(repo Repo, ledger Ledger, profileRepo ProfileRepo, txManager pg.TXManager, mailer Mailer, minWithdrawal float64) *Service {
	return &Service{
		repo:          repo,
		ledger:        ledger,
		profileRepo:   profileRepo,
		txManager:     txManager,
		mailer:        mailer,
		minWithdrawal: minWithdrawal,
	}
}

// Request persists a pending withdrawal. The balance is not debited here:
// funds stay visible until approval, which re-validates the amount.
func (s *Service) Request(ctx context.Context, userID int, amount float64, bankAccount string) (*domain.WithdrawalRequest, error) {
	if amount < s.minWithdrawal {
		return nil, ErrBelowMinimum
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > balance {
		return nil, ErrInsufficientFunds
	}

	pending, err := s.repo.FindPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		zap.L().Info("pending withdrawal already exists", zap.Int("user_id", userID))
		return nil, ErrPendingExists
	}

	wd := &domain.WithdrawalRequest{
		UserID:      userID,
		Amount:      amount,
		BankAccount: bankAccount,
		Status:      PendingStatus,
	}
	if _, err := s.repo.CreateRequest(ctx, wd); err != nil {
		zap.L().Error("can't create withdrawal request", zap.Error(err))
		return nil, err
	}

	if logins, err := s.profileRepo.ListAdminLogins(ctx); err == nil {
		s.mailer.SendAdminAlert(logins, "New withdrawal request",
			"A new withdrawal request is awaiting review.")
	} else {
		zap.L().Warn("can't list admin logins", zap.Error(err))
	}
	return wd, nil
}

// Approve debits the ledger and completes the request in one transaction. The
// amount is validated against the live balance again, since it may have
// dropped since submission.
func (s *Service) Approve(ctx context.Context, requestID, adminID int, notes string) (*domain.WithdrawalRequest, error) {
	wd, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, ErrRequestNotFound
	}
	if wd.Status != PendingStatus {
		return nil, ErrRequestNotPending
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.MarkDecided(ctx, requestID, CompletedStatus, adminID, notes)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRequestNotPending
		}
		_, err = s.ledger.Apply(ctx, wd.UserID, wd.Amount, ledgerservice.DebitType, ledgerservice.SourceWithdrawal, requestID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrRequestNotPending) && !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("failed to approve withdrawal request", zap.Int("request_id", requestID), zap.Error(err))
		}
		return nil, err
	}
	wd.Status = CompletedStatus

	zap.L().Info("withdrawal request approved",
		zap.Int("request_id", requestID), zap.Int("admin_id", adminID), zap.Float64("amount", wd.Amount))
	s.notify(ctx, wd, notes, true)
	return wd, nil
}

// Reject requires a reason and never touches the ledger: nothing was debited
// at submission, so there is nothing to refund.
func (s *Service) Reject(ctx context.Context, requestID, adminID int, notes string) (*domain.WithdrawalRequest, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrNotesRequired
	}

	wd, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, ErrRequestNotFound
	}

	ok, err := s.repo.MarkDecided(ctx, requestID, RejectedStatus, adminID, notes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRequestNotPending
	}
	wd.Status = RejectedStatus

	zap.L().Info("withdrawal request rejected",
		zap.Int("request_id", requestID), zap.Int("admin_id", adminID))
	s.notify(ctx, wd, notes, false)
	return wd, nil
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to list withdrawal requests", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) notify(ctx context.Context, wd *domain.WithdrawalRequest, notes string, approved bool) {
	profile, err := s.profileRepo.FindByID(ctx, wd.UserID)
	if err != nil || profile == nil {
		zap.L().Warn("can't resolve profile for notification", zap.Int("user_id", wd.UserID), zap.Error(err))
		return
	}
	if approved {
		s.mailer.SendWithdrawalApproved(profile.Login, wd.Amount)
		return
	}
	s.mailer.SendWithdrawalRejected(profile.Login, wd.Amount, notes)
}
