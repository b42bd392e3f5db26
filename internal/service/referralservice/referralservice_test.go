package referralservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockCourseRepo, *MockEnrollmentRepo, *MockLedger, *MockMailer) {
	ctrl := gomock.NewController(t)
	profileRepo := NewMockProfileRepo(ctrl)
	courseRepo := NewMockCourseRepo(ctrl)
	enrollmentRepo := NewMockEnrollmentRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	mailer := NewMockMailer(ctrl)
	service := New(profileRepo, courseRepo, enrollmentRepo, ledger, mailer, Policy{
		CommissionPct: 10,
		FlatBonus:     5,
	})
	defer ctrl.Finish()
	return service, profileRepo, courseRepo, enrollmentRepo, ledger, mailer
}

func strPtr(s string) *string { return &s }

func TestAttribute(t *testing.T) {
	service, profileRepo, courseRepo, enrollmentRepo, ledger, mailer := NewMock(t)

	tests := []struct {
		name          string
		referralCode  string
		referredID    int
		requestID     int
		courseID      int
		prepareMock   func()
		expectedTx    *domain.BalanceTransaction
		expectedError error
	}{
		{
			name:         "Explicit code credits a percentage of the price",
			referralCode: "refcode12345",
			referredID:   3,
			requestID:    7,
			courseID:     42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 7).Return(false, nil)
				profileRepo.EXPECT().FindByReferralCode(gomock.Any(), "refcode12345").Return(&domain.Profile{ID: 5, Login: "referrer@example.com"}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Price: 120.0}, nil)
				ledger.EXPECT().Apply(gomock.Any(), 5, 12.0, ledgerservice.CreditType, ledgerservice.SourceReferralCommission, 7).
					Return(&domain.BalanceTransaction{ID: 20, UserID: 5, Amount: 12.0}, nil)
				mailer.EXPECT().SendReferralCommission("referrer@example.com", 12.0)
			},
			expectedTx: &domain.BalanceTransaction{ID: 20, UserID: 5, Amount: 12.0},
		},
		{
			name:         "Free course pays the flat bonus",
			referralCode: "refcode12345",
			referredID:   3,
			requestID:    8,
			courseID:     43,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 8).Return(false, nil)
				profileRepo.EXPECT().FindByReferralCode(gomock.Any(), "refcode12345").Return(&domain.Profile{ID: 5, Login: "referrer@example.com"}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 43).Return(&domain.Course{ID: 43, Price: 0}, nil)
				ledger.EXPECT().Apply(gomock.Any(), 5, 5.0, ledgerservice.CreditType, ledgerservice.SourceReferralCommission, 8).
					Return(&domain.BalanceTransaction{ID: 21, UserID: 5, Amount: 5.0}, nil)
				mailer.EXPECT().SendReferralCommission("referrer@example.com", 5.0)
			},
			expectedTx: &domain.BalanceTransaction{ID: 21, UserID: 5, Amount: 5.0},
		},
		{
			name:         "Already credited request is skipped",
			referralCode: "refcode12345",
			referredID:   3,
			requestID:    7,
			courseID:     42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 7).Return(true, nil)
			},
		},
		{
			name:         "Unresolvable code is skipped",
			referralCode: "nosuchcode12",
			referredID:   3,
			requestID:    7,
			courseID:     42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 7).Return(false, nil)
				profileRepo.EXPECT().FindByReferralCode(gomock.Any(), "nosuchcode12").Return(nil, nil)
			},
		},
		{
			name:         "Self-referral is skipped",
			referralCode: "refcode12345",
			referredID:   5,
			requestID:    7,
			courseID:     42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 7).Return(false, nil)
				profileRepo.EXPECT().FindByReferralCode(gomock.Any(), "refcode12345").Return(&domain.Profile{ID: 5}, nil)
			},
		},
		{
			name:       "Signup code fallback fires on first approved enrollment",
			referredID: 3,
			requestID:  7,
			courseID:   42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 7).Return(false, nil)
				profileRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Profile{ID: 3, SignupReferralCode: strPtr("signupcode12")}, nil)
				enrollmentRepo.EXPECT().HasOtherApprovedRequest(gomock.Any(), 3, 7).Return(false, nil)
				profileRepo.EXPECT().FindByReferralCode(gomock.Any(), "signupcode12").Return(&domain.Profile{ID: 5, Login: "referrer@example.com"}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Price: 120.0}, nil)
				ledger.EXPECT().Apply(gomock.Any(), 5, 12.0, ledgerservice.CreditType, ledgerservice.SourceReferralCommission, 7).
					Return(&domain.BalanceTransaction{ID: 22, UserID: 5, Amount: 12.0}, nil)
				mailer.EXPECT().SendReferralCommission("referrer@example.com", 12.0)
			},
			expectedTx: &domain.BalanceTransaction{ID: 22, UserID: 5, Amount: 12.0},
		},
		{
			name:       "Signup code fallback skipped after an earlier approval",
			referredID: 3,
			requestID:  9,
			courseID:   42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 9).Return(false, nil)
				profileRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Profile{ID: 3, SignupReferralCode: strPtr("signupcode12")}, nil)
				enrollmentRepo.EXPECT().HasOtherApprovedRequest(gomock.Any(), 3, 9).Return(true, nil)
			},
		},
		{
			name:       "No code anywhere resolves to nothing",
			referredID: 3,
			requestID:  7,
			courseID:   42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 7).Return(false, nil)
				profileRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Profile{ID: 3}, nil)
			},
		},
		{
			name:         "Ledger error propagates",
			referralCode: "refcode12345",
			referredID:   3,
			requestID:    7,
			courseID:     42,
			prepareMock: func() {
				ledger.EXPECT().HasTransaction(gomock.Any(), ledgerservice.SourceReferralCommission, 7).Return(false, nil)
				profileRepo.EXPECT().FindByReferralCode(gomock.Any(), "refcode12345").Return(&domain.Profile{ID: 5}, nil)
				courseRepo.EXPECT().FindByID(gomock.Any(), 42).Return(&domain.Course{ID: 42, Price: 120.0}, nil)
				ledger.EXPECT().Apply(gomock.Any(), 5, 12.0, ledgerservice.CreditType, ledgerservice.SourceReferralCommission, 7).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			tx, err := service.Attribute(context.Background(), tt.referralCode, tt.referredID, tt.requestID, tt.courseID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTx, tx)
			}
		})
	}
}
