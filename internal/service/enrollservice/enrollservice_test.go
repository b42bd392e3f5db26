package enrollservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCourseRepo, *MockProfileRepo, *MockReferralEngine, *pg.MockTXManager, *MockMailer) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	courseRepo := NewMockCourseRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	referral := NewMockReferralEngine(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	mailer := NewMockMailer(ctrl)
	service := New(repo, courseRepo, profileRepo, referral, txManager, mailer)
	defer ctrl.Finish()
	return service, repo, courseRepo, profileRepo, referral, txManager, mailer
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func strPtr(s string) *string { return &s }

func TestSubmit(t *testing.T) {
	service, repo, courseRepo, profileRepo, _, _, mailer := NewMock(t)
	expired := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name          string
		userID        int
		courseID      int
		screenshots   []string
		referralCode  string
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Successful submission",
			userID:      3,
			courseID:    42,
			screenshots: []string{"https://cdn.example.com/pay1.png"},
			prepareMock: func() {
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Title: "Practical SQL"}, nil)
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().FindPendingByUserCourse(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req *domain.EnrollmentRequest) (*domain.EnrollmentRequest, error) {
						req.ID = 7
						return req, nil
					})
				profileRepo.EXPECT().ListAdminLogins(gomock.Any()).Return([]string{"admin@example.com"}, nil)
				mailer.EXPECT().SendAdminAlert([]string{"admin@example.com"}, "New enrollment request", gomock.Any())
			},
		},
		{
			name:         "Referral code is captured on the request",
			userID:       3,
			courseID:     42,
			screenshots:  []string{"https://cdn.example.com/pay1.png"},
			referralCode: "refcode12345",
			prepareMock: func() {
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Title: "Practical SQL"}, nil)
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().FindPendingByUserCourse(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req *domain.EnrollmentRequest) (*domain.EnrollmentRequest, error) {
						assert.NotNil(t, req.ReferralCode)
						assert.Equal(t, "refcode12345", *req.ReferralCode)
						return req, nil
					})
				profileRepo.EXPECT().ListAdminLogins(gomock.Any()).Return(nil, errors.New("db error"))
			},
		},
		{
			name:        "Course not found",
			userID:      3,
			courseID:    99,
			screenshots: []string{"https://cdn.example.com/pay1.png"},
			prepareMock: func() {
				courseRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrCourseNotFound,
		},
		{
			name:        "Active enrollment exists",
			userID:      3,
			courseID:    42,
			screenshots: []string{"https://cdn.example.com/pay1.png"},
			prepareMock: func() {
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42}, nil)
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(&domain.Enrollment{ID: 1, UserID: 3, CourseID: 42}, nil)
			},
			expectedError: ErrAlreadyEnrolled,
		},
		{
			name:        "Expired enrollment allows a new request",
			userID:      3,
			courseID:    42,
			screenshots: []string{"https://cdn.example.com/pay1.png"},
			prepareMock: func() {
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Title: "Practical SQL"}, nil)
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(&domain.Enrollment{ID: 1, UserID: 3, CourseID: 42, ExpiresAt: &expired}, nil)
				repo.EXPECT().FindPendingByUserCourse(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req *domain.EnrollmentRequest) (*domain.EnrollmentRequest, error) {
						return req, nil
					})
				profileRepo.EXPECT().ListAdminLogins(gomock.Any()).Return(nil, nil)
				mailer.EXPECT().SendAdminAlert(nil, "New enrollment request", gomock.Any())
			},
		},
		{
			name:        "Pending request exists",
			userID:      3,
			courseID:    42,
			screenshots: []string{"https://cdn.example.com/pay1.png"},
			prepareMock: func() {
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42}, nil)
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().FindPendingByUserCourse(gomock.Any(), 3, 42).Return(&domain.EnrollmentRequest{ID: 6}, nil)
			},
			expectedError: ErrRequestExists,
		},
		{
			name:        "Error creating request",
			userID:      3,
			courseID:    42,
			screenshots: []string{"https://cdn.example.com/pay1.png"},
			prepareMock: func() {
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42}, nil)
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().FindPendingByUserCourse(gomock.Any(), 3, 42).Return(nil, nil)
				repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req, err := service.Submit(context.Background(), tt.userID, tt.courseID, tt.screenshots, tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, PendingStatus, req.Status)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, repo, courseRepo, profileRepo, referral, txManager, mailer := NewMock(t)
	accessDays := 180

	tests := []struct {
		name          string
		requestID     int
		prepareMock   func()
		checkResult   func(t *testing.T, enrollment *domain.Enrollment, commission *domain.BalanceTransaction)
		expectedError error
	}{
		{
			name:      "Approval enrolls and attributes commission",
			requestID: 7,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 7).Return(&domain.EnrollmentRequest{
					ID: 7, UserID: 3, CourseID: 42, Status: PendingStatus, ReferralCode: strPtr("refcode12345"),
				}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Title: "Practical SQL", AccessDays: &accessDays}, nil)
				passthroughTx(txManager)
				repo.EXPECT().UpdateRequestStatus(gomock.Any(), 7, ApprovedStatus).Return(true, nil)
				repo.EXPECT().UpsertEnrollment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
						e.ID = 1
						return e, nil
					})
				referral.EXPECT().Attribute(gomock.Any(), "refcode12345", 3, 7, 42).
					Return(&domain.BalanceTransaction{ID: 20, Amount: 12.0}, nil)
				profileRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Profile{ID: 3, Login: "student@example.com"}, nil)
				mailer.EXPECT().SendEnrollmentApproved("student@example.com", "Practical SQL")
			},
			checkResult: func(t *testing.T, enrollment *domain.Enrollment, commission *domain.BalanceTransaction) {
				assert.NotNil(t, enrollment.ExpiresAt)
				assert.Equal(t, 42, enrollment.CourseID)
				assert.Equal(t, 12.0, commission.Amount)
			},
		},
		{
			name:      "Lifetime access leaves expiry empty",
			requestID: 8,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 8).Return(&domain.EnrollmentRequest{
					ID: 8, UserID: 3, CourseID: 43, Status: PendingStatus,
				}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 43).Return(&domain.Course{ID: 43, Title: "Go Basics"}, nil)
				passthroughTx(txManager)
				repo.EXPECT().UpdateRequestStatus(gomock.Any(), 8, ApprovedStatus).Return(true, nil)
				repo.EXPECT().UpsertEnrollment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
						return e, nil
					})
				referral.EXPECT().Attribute(gomock.Any(), "", 3, 8, 43).Return(nil, nil)
				profileRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Profile{ID: 3, Login: "student@example.com"}, nil)
				mailer.EXPECT().SendEnrollmentApproved("student@example.com", "Go Basics")
			},
			checkResult: func(t *testing.T, enrollment *domain.Enrollment, commission *domain.BalanceTransaction) {
				assert.Nil(t, enrollment.ExpiresAt)
				assert.Nil(t, commission)
			},
		},
		{
			name:      "Request not found",
			requestID: 99,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:      "Repeated approval fails on the status check",
			requestID: 7,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 7).Return(&domain.EnrollmentRequest{
					ID: 7, UserID: 3, CourseID: 42, Status: ApprovedStatus,
				}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42}, nil)
				passthroughTx(txManager)
				repo.EXPECT().UpdateRequestStatus(gomock.Any(), 7, ApprovedStatus).Return(false, nil)
			},
			expectedError: ErrRequestNotPending,
		},
		{
			name:      "Commission failure rolls the approval back",
			requestID: 7,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 7).Return(&domain.EnrollmentRequest{
					ID: 7, UserID: 3, CourseID: 42, Status: PendingStatus, ReferralCode: strPtr("refcode12345"),
				}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42}, nil)
				passthroughTx(txManager)
				repo.EXPECT().UpdateRequestStatus(gomock.Any(), 7, ApprovedStatus).Return(true, nil)
				repo.EXPECT().UpsertEnrollment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
						return e, nil
					})
				referral.EXPECT().Attribute(gomock.Any(), "refcode12345", 3, 7, 42).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			enrollment, commission, err := service.Approve(context.Background(), tt.requestID, 2)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				tt.checkResult(t, enrollment, commission)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, repo, courseRepo, profileRepo, _, _, mailer := NewMock(t)

	tests := []struct {
		name          string
		requestID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Successful rejection",
			requestID: 7,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 7).Return(&domain.EnrollmentRequest{
					ID: 7, UserID: 3, CourseID: 42, Status: PendingStatus,
				}, nil)
				repo.EXPECT().UpdateRequestStatus(gomock.Any(), 7, RejectedStatus).Return(true, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Title: "Practical SQL"}, nil)
				profileRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Profile{ID: 3, Login: "student@example.com"}, nil)
				mailer.EXPECT().SendEnrollmentRejected("student@example.com", "Practical SQL")
			},
		},
		{
			name:      "Request not found",
			requestID: 99,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:      "Already decided",
			requestID: 7,
			prepareMock: func() {
				repo.EXPECT().FindRequestByID(gomock.Any(), 7).Return(&domain.EnrollmentRequest{
					ID: 7, UserID: 3, CourseID: 42, Status: RejectedStatus,
				}, nil)
				repo.EXPECT().UpdateRequestStatus(gomock.Any(), 7, RejectedStatus).Return(false, nil)
			},
			expectedError: ErrRequestNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req, err := service.Reject(context.Background(), tt.requestID, 2)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, RejectedStatus, req.Status)
			}
		})
	}
}

func TestListRequests(t *testing.T) {
	service, repo, _, _, _, _, _ := NewMock(t)

	t.Run("Empty status defaults to pending", func(t *testing.T) {
		repo.EXPECT().ListRequests(gomock.Any(), PendingStatus).Return([]domain.EnrollmentRequest{{ID: 7}}, nil)
		requests, err := service.ListRequests(context.Background(), "")
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("Explicit status is passed through", func(t *testing.T) {
		repo.EXPECT().ListRequests(gomock.Any(), ApprovedStatus).Return(nil, nil)
		_, err := service.ListRequests(context.Background(), ApprovedStatus)
		assert.NoError(t, err)
	})
}

func TestHasAccess(t *testing.T) {
	service, repo, _, _, _, _, _ := NewMock(t)
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name        string
		prepareMock func()
		expected    bool
	}{
		{
			name: "No enrollment",
			prepareMock: func() {
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(nil, nil)
			},
			expected: false,
		},
		{
			name: "Lifetime enrollment",
			prepareMock: func() {
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(&domain.Enrollment{ID: 1}, nil)
			},
			expected: true,
		},
		{
			name: "Unexpired enrollment",
			prepareMock: func() {
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(&domain.Enrollment{ID: 1, ExpiresAt: &future}, nil)
			},
			expected: true,
		},
		{
			name: "Expired enrollment",
			prepareMock: func() {
				repo.EXPECT().FindEnrollment(gomock.Any(), 3, 42).Return(&domain.Enrollment{ID: 1, ExpiresAt: &past}, nil)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			hasAccess, err := service.HasAccess(context.Background(), 3, 42)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, hasAccess)
		})
	}
}
