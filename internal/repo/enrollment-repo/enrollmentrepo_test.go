package enrollmentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/coursemart/coursemart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var requestRows = []string{"id", "user_id", "course_id", "status", "payment_screenshots", "referral_code", "created_at", "updated_at"}

func TestRepository_CreateRequest(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		request   *domain.EnrollmentRequest
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Request created successfully",
			request: &domain.EnrollmentRequest{
				UserID:             3,
				CourseID:           42,
				Status:             "pending",
				PaymentScreenshots: []string{"https://cdn.example.com/pay1.png"},
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO enrollment_requests (user_id, course_id, status, payment_screenshots, referral_code)`)).
					WithArgs(3, 42, "pending", []string{"https://cdn.example.com/pay1.png"}, pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
			},
		},
		{
			name: "Database error",
			request: &domain.EnrollmentRequest{
				UserID:             3,
				CourseID:           42,
				Status:             "pending",
				PaymentScreenshots: []string{"https://cdn.example.com/pay1.png"},
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO enrollment_requests (user_id, course_id, status, payment_screenshots, referral_code)`)).
					WithArgs(3, 42, "pending", []string{"https://cdn.example.com/pay1.png"}, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateRequest(ctx, tt.request)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
			}
		})
	}
}

func TestRepository_FindRequestByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Request found", func(t *testing.T) {
		rows := pgxmock.NewRows(requestRows).
			AddRow(7, 3, 42, "pending", []string{"https://cdn.example.com/pay1.png"}, nil, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM enrollment_requests`)).
			WithArgs(7).
			WillReturnRows(rows)

		req, err := repo.FindRequestByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, req.ID)
		assert.Equal(t, "pending", req.Status)
	})

	t.Run("Request not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM enrollment_requests`)).
			WithArgs(99).
			WillReturnRows(pgxmock.NewRows(requestRows))

		req, err := repo.FindRequestByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, req)
	})
}

func TestRepository_UpdateRequestStatus(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		requestID int
		status    string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name:      "Pending request transitions",
			requestID: 7,
			status:    "approved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE enrollment_requests`)).
					WithArgs("approved", 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			result: true,
		},
		{
			name:      "Already decided request does not transition",
			requestID: 7,
			status:    "approved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE enrollment_requests`)).
					WithArgs("approved", 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			result: false,
		},
		{
			name:      "Database error",
			requestID: 7,
			status:    "approved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE enrollment_requests`)).
					WithArgs("approved", 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.UpdateRequestStatus(ctx, tt.requestID, tt.status)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, ok)
			}
		})
	}
}

func TestRepository_ListRequests(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Requests found", func(t *testing.T) {
		rows := pgxmock.NewRows(requestRows).
			AddRow(7, 3, 42, "pending", []string{"https://cdn.example.com/pay1.png"}, nil, now, now).
			AddRow(8, 4, 42, "pending", []string{"https://cdn.example.com/pay2.png"}, nil, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1`)).
			WithArgs("pending").
			WillReturnRows(rows)

		requests, err := repo.ListRequests(ctx, "pending")
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1`)).
			WithArgs("pending").
			WillReturnError(errors.New("database error"))

		_, err := repo.ListRequests(ctx, "pending")
		assert.Error(t, err)
	})
}

func TestRepository_HasOtherApprovedRequest(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Earlier approval exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(3, 7).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.HasOtherApprovedRequest(ctx, 3, 7)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("First approval", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(3, 7).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.HasOtherApprovedRequest(ctx, 3, 7)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRepository_FindEnrollment(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Enrollment found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "course_id", "expires_at", "created_at"}).
					AddRow(1, 3, 42, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM enrollments`)).
					WithArgs(3, 42).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "No enrollment",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM enrollments`)).
					WithArgs(3, 42).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "course_id", "expires_at", "created_at"}))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM enrollments`)).
					WithArgs(3, 42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			enrollment, err := repo.FindEnrollment(ctx, 3, 42)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.found, enrollment != nil)
			}
		})
	}
}

func TestRepository_UpsertEnrollment(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	expiresAt := now.AddDate(0, 0, 180)

	t.Run("Enrollment upserted", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO enrollments (user_id, course_id, expires_at)`)).
			WithArgs(3, 42, &expiresAt).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

		enrollment, err := repo.UpsertEnrollment(ctx, &domain.Enrollment{UserID: 3, CourseID: 42, ExpiresAt: &expiresAt})
		assert.NoError(t, err)
		assert.Equal(t, 1, enrollment.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO enrollments (user_id, course_id, expires_at)`)).
			WithArgs(3, 42, pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))

		_, err := repo.UpsertEnrollment(ctx, &domain.Enrollment{UserID: 3, CourseID: 42})
		assert.Error(t, err)
	})
}
