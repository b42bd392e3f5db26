package enrollservice

import (
	"context"
	"errors"
	"time"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	CreateRequest(ctx context.Context, req *domain.EnrollmentRequest) (*domain.EnrollmentRequest, error)
	FindRequestByID(ctx context.Context, requestID int) (*domain.EnrollmentRequest, error)
	FindPendingByUserCourse(ctx context.Context, userID, courseID int) (*domain.EnrollmentRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID int, status string) (bool, error)
	ListRequests(ctx context.Context, status string) ([]domain.EnrollmentRequest, error)
	ListRequestsByUser(ctx context.Context, userID int) ([]domain.EnrollmentRequest, error)
	FindEnrollment(ctx context.Context, userID, courseID int) (*domain.Enrollment, error)
	UpsertEnrollment(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
}

type CourseRepo interface {
	FindByID(ctx context.Context, courseID int) (*domain.Course, error)
}

type ProfileRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.Profile, error)
	ListAdminLogins(ctx context.Context) ([]string, error)
}

type ReferralEngine interface {
	Attribute(ctx context.Context, referralCode string, referredUserID, requestID, courseID int) (*domain.BalanceTransaction, error)
}

type Mailer interface {
	SendEnrollmentApproved(email, courseTitle string)
	SendEnrollmentRejected(email, courseTitle string)
	SendAdminAlert(emails []string, subject, text string)
}

const (
	// PendingStatus заявка ожидает решения администратора;
	PendingStatus string = "pending"
	// ApprovedStatus заявка одобрена, доступ к курсу открыт;
	ApprovedStatus string = "approved"
	// RejectedStatus заявка отклонена;
	RejectedStatus string = "rejected"
)

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrAlreadyEnrolled   = errors.New("active enrollment already exists")
	ErrRequestExists     = errors.New("pending enrollment request already exists")
	ErrRequestNotFound   = errors.New("enrollment request not found")
	ErrRequestNotPending = errors.New("enrollment request is not pending")
)

type Service struct {
	repo        Repo
	courseRepo  CourseRepo
	profileRepo ProfileRepo
	referral    ReferralEngine
	txManager   pg.TXManager
	mailer      Mailer
}

func New(repo Repo, courseRepo CourseRepo, profileRepo ProfileRepo, referral ReferralEngine, txManager pg.TXManager, mailer Mailer) *Service {
	return &Service{
		repo:        repo,
		courseRepo:  courseRepo,
		profileRepo: profileRepo,
		referral:    referral,
		txManager:   txManager,
		mailer:      mailer,
	}
}

// Submit persists a pending request with the payment evidence. The ledger and
// enrollments are untouched until an admin decides.
func (s *Service) Submit(ctx context.Context, userID, courseID int, screenshots []string, referralCode string) (*domain.EnrollmentRequest, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	enrollment, err := s.repo.FindEnrollment(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrollment != nil && (enrollment.ExpiresAt == nil || enrollment.ExpiresAt.After(time.Now())) {
		zap.L().Info("enrollment already active", zap.Int("user_id", userID), zap.Int("course_id", courseID))
		return nil, ErrAlreadyEnrolled
	}

	pending, err := s.repo.FindPendingByUserCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		zap.L().Info("pending request already exists", zap.Int("user_id", userID), zap.Int("course_id", courseID))
		return nil, ErrRequestExists
	}

	req := &domain.EnrollmentRequest{
		UserID:             userID,
		CourseID:           courseID,
		Status:             PendingStatus,
		PaymentScreenshots: screenshots,
	}
	if referralCode != "" {
		req.ReferralCode = &referralCode
	}

	if _, err := s.repo.CreateRequest(ctx, req); err != nil {
		zap.L().Error("can't create enrollment request", zap.Error(err))
		return nil, err
	}

	s.alertAdmins(ctx, "New enrollment request",
		"A new enrollment request for "+course.Title+" is awaiting review.")
	return req, nil
}

// Approve transitions the request, creates the enrollment and attributes the
// referral commission in one transaction. The pending check-and-set makes a
// repeated approval fail with ErrRequestNotPending instead of enrolling twice.
func (s *Service) Approve(ctx context.Context, requestID, adminID int) (*domain.Enrollment, *domain.BalanceTransaction, error) {
	req, err := s.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if req == nil {
		return nil, nil, ErrRequestNotFound
	}

	course, err := s.courseRepo.FindByID(ctx, req.CourseID)
	if err != nil {
		return nil, nil, err
	}
	if course == nil {
		return nil, nil, ErrCourseNotFound
	}

	var enrollment *domain.Enrollment
	var commission *domain.BalanceTransaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.UpdateRequestStatus(ctx, requestID, ApprovedStatus)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRequestNotPending
		}

		enrollment = &domain.Enrollment{
			UserID:   req.UserID,
			CourseID: req.CourseID,
		}
		if course.AccessDays != nil {
			expiresAt := time.Now().AddDate(0, 0, *course.AccessDays)
			enrollment.ExpiresAt = &expiresAt
		}
		if _, err := s.repo.UpsertEnrollment(ctx, enrollment); err != nil {
			return err
		}

		code := ""
		if req.ReferralCode != nil {
			code = *req.ReferralCode
		}
		commission, err = s.referral.Attribute(ctx, code, req.UserID, req.ID, req.CourseID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrRequestNotPending) {
			zap.L().Error("failed to approve enrollment request", zap.Int("request_id", requestID), zap.Error(err))
		}
		return nil, nil, err
	}

	zap.L().Info("enrollment request approved",
		zap.Int("request_id", requestID), zap.Int("admin_id", adminID))
	s.notify(ctx, req.UserID, course.Title, true)
	return enrollment, commission, nil
}

// Reject is a pure status transition. Nothing was reserved at submission, so
// there is no ledger change to undo.
func (s *Service) Reject(ctx context.Context, requestID, adminID int) (*domain.EnrollmentRequest, error) {
	req, err := s.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	ok, err := s.repo.UpdateRequestStatus(ctx, requestID, RejectedStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRequestNotPending
	}
	req.Status = RejectedStatus

	zap.L().Info("enrollment request rejected",
		zap.Int("request_id", requestID), zap.Int("admin_id", adminID))

	course, err := s.courseRepo.FindByID(ctx, req.CourseID)
	if err == nil && course != nil {
		s.notify(ctx, req.UserID, course.Title, false)
	}
	return req, nil
}

func (s *Service) ListRequests(ctx context.Context, status string) ([]domain.EnrollmentRequest, error) {
	if status == "" {
		status = PendingStatus
	}
	requests, err := s.repo.ListRequests(ctx, status)
	if err != nil {
		zap.L().Error("failed to list enrollment requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ListUserRequests(ctx context.Context, userID int) ([]domain.EnrollmentRequest, error) {
	requests, err := s.repo.ListRequestsByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list user enrollment requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// HasAccess reports whether the user holds a non-expired enrollment.
func (s *Service) HasAccess(ctx context.Context, userID, courseID int) (bool, error) {
	enrollment, err := s.repo.FindEnrollment(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	if enrollment == nil {
		return false, nil
	}
	return enrollment.ExpiresAt == nil || enrollment.ExpiresAt.After(time.Now()), nil
}

func (s *Service) alertAdmins(ctx context.Context, subject, text string) {
	logins, err := s.profileRepo.ListAdminLogins(ctx)
	if err != nil {
		zap.L().Warn("can't list admin logins", zap.Error(err))
		return
	}
	s.mailer.SendAdminAlert(logins, subject, text)
}

func (s *Service) notify(ctx context.Context, userID int, courseTitle string, approved bool) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil || profile == nil {
		zap.L().Warn("can't resolve profile for notification", zap.Int("user_id", userID), zap.Error(err))
		return
	}
	if approved {
		s.mailer.SendEnrollmentApproved(profile.Login, courseTitle)
		return
	}
	s.mailer.SendEnrollmentRejected(profile.Login, courseTitle)
}
