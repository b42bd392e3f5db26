package referralservice

import (
	"context"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/service/ledgerservice"
	"go.uber.org/zap"
)

type ProfileRepo interface {
	FindByReferralCode(ctx context.Context, code string) (*domain.Profile, error)
	FindByID(ctx context.Context, userID int) (*domain.Profile, error)
}

type CourseRepo interface {
	FindByID(ctx context.Context, courseID int) (*domain.Course, error)
}

type EnrollmentRepo interface {
	HasOtherApprovedRequest(ctx context.Context, userID, excludeRequestID int) (bool, error)
}

type Ledger interface {
	Apply(ctx context.Context, userID int, amount float64, txType, source string, referenceID int) (*domain.BalanceTransaction, error)
	HasTransaction(ctx context.Context, source string, referenceID int) (bool, error)
}

type Mailer interface {
	SendReferralCommission(email string, amount float64)
}

// Policy configures how a commission is computed: a percentage of the course
// price, or a flat bonus when the course is free.
type Policy struct {
	CommissionPct float64
	FlatBonus     float64
}

type Service struct {
	profileRepo    ProfileRepo
	courseRepo     CourseRepo
	enrollmentRepo EnrollmentRepo
	ledger         Ledger
	mailer         Mailer
	policy         Policy
}

func New(profileRepo ProfileRepo, courseRepo CourseRepo, enrollmentRepo EnrollmentRepo, ledger Ledger, mailer Mailer, policy Policy) *Service {
	return &Service{
		profileRepo:    profileRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		ledger:         ledger,
		mailer:         mailer,
		policy:         policy,
	}
}

// Attribute credits the referrer for an approved enrollment. It never fails
// the approval: an unresolvable code, a self-referral or an already-credited
// request resolve to (nil, nil) with a log line. The enrollment request id is
// the idempotency key, so a retried approval cannot credit twice.
func (s *Service) Attribute(ctx context.Context, referralCode string, referredUserID, requestID, courseID int) (*domain.BalanceTransaction, error) {
	credited, err := s.ledger.HasTransaction(ctx, ledgerservice.SourceReferralCommission, requestID)
	if err != nil {
		return nil, err
	}
	if credited {
		zap.L().Info("commission already attributed", zap.Int("request_id", requestID))
		return nil, nil
	}

	referrer, err := s.resolveReferrer(ctx, referralCode, referredUserID, requestID)
	if err != nil || referrer == nil {
		return nil, err
	}
	if referrer.ID == referredUserID {
		zap.L().Info("self-referral skipped", zap.Int("user_id", referredUserID))
		return nil, nil
	}

	commission, err := s.commission(ctx, courseID)
	if err != nil {
		return nil, err
	}

	tx, err := s.ledger.Apply(ctx, referrer.ID, commission, ledgerservice.CreditType, ledgerservice.SourceReferralCommission, requestID)
	if err != nil {
		return nil, err
	}

	zap.L().Info("referral commission attributed",
		zap.Int("referrer_id", referrer.ID),
		zap.Int("referred_user_id", referredUserID),
		zap.Float64("commission", commission))
	s.mailer.SendReferralCommission(referrer.Login, commission)
	return tx, nil
}

// resolveReferrer tries the code carried on the enrollment request first, then
// falls back to the code captured at the referred user's signup. The fallback
// fires only for the user's first approved enrollment.
func (s *Service) resolveReferrer(ctx context.Context, referralCode string, referredUserID, requestID int) (*domain.Profile, error) {
	code := referralCode
	if code == "" {
		referred, err := s.profileRepo.FindByID(ctx, referredUserID)
		if err != nil {
			return nil, err
		}
		if referred == nil || referred.SignupReferralCode == nil {
			return nil, nil
		}
		hasEarlier, err := s.enrollmentRepo.HasOtherApprovedRequest(ctx, referredUserID, requestID)
		if err != nil {
			return nil, err
		}
		if hasEarlier {
			return nil, nil
		}
		code = *referred.SignupReferralCode
	}

	referrer, err := s.profileRepo.FindByReferralCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if referrer == nil {
		zap.L().Info("referral code did not resolve", zap.String("code", code))
		return nil, nil
	}
	return referrer, nil
}

func (s *Service) commission(ctx context.Context, courseID int) (float64, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return 0, err
	}
	if course != nil && course.Price > 0 {
		return course.Price * s.policy.CommissionPct / 100, nil
	}
	return s.policy.FlatBonus, nil
}
