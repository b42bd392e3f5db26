package enrollmentrepo

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

const requestColumns = `id, user_id, course_id, status, payment_screenshots, referral_code, created_at, updated_at`

func scanRequest(row pgx.Row) (*domain.EnrollmentRequest, error) {
	var req domain.EnrollmentRequest
	err := row.Scan(&req.ID, &req.UserID, &req.CourseID, &req.Status, &req.PaymentScreenshots, &req.ReferralCode, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) CreateRequest(ctx context.Context, req *domain.EnrollmentRequest) (*domain.EnrollmentRequest, error) {
	query := `
        INSERT INTO enrollment_requests (user_id, course_id, status, payment_screenshots, referral_code)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, req.UserID, req.CourseID, req.Status, req.PaymentScreenshots, req.ReferralCode).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create enrollment request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindRequestByID(ctx context.Context, requestID int) (*domain.EnrollmentRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM enrollment_requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		zap.L().Error("can't find enrollment request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindPendingByUserCourse(ctx context.Context, userID, courseID int) (*domain.EnrollmentRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM enrollment_requests
        WHERE user_id = $1 AND course_id = $2 AND status = 'pending'
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, userID, courseID))
	if err != nil {
		zap.L().Error("can't find pending enrollment request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// UpdateRequestStatus is a check-and-set transition from pending: it reports
// false when the request was already decided, so a repeated approve or reject
// cannot process the same request twice.
func (r *Repository) UpdateRequestStatus(ctx context.Context, requestID int, status string) (bool, error) {
	query := `
        UPDATE enrollment_requests
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, requestID)
	if err != nil {
		zap.L().Error("can't update enrollment request status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListRequests(ctx context.Context, status string) ([]domain.EnrollmentRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM enrollment_requests
        WHERE status = $1
        ORDER BY created_at ASC
    `
	return r.listRequests(ctx, query, status)
}

func (r *Repository) ListRequestsByUser(ctx context.Context, userID int) ([]domain.EnrollmentRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM enrollment_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.listRequests(ctx, query, userID)
}

func (r *Repository) listRequests(ctx context.Context, query string, args ...any) ([]domain.EnrollmentRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list enrollment requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.EnrollmentRequest
	for rows.Next() {
		var req domain.EnrollmentRequest
		err := rows.Scan(&req.ID, &req.UserID, &req.CourseID, &req.Status, &req.PaymentScreenshots, &req.ReferralCode, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan enrollment request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *Repository) HasOtherApprovedRequest(ctx context.Context, userID, excludeRequestID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM enrollment_requests
            WHERE user_id = $1 AND status = 'approved' AND id <> $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, excludeRequestID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check approved enrollment requests", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindEnrollment(ctx context.Context, userID, courseID int) (*domain.Enrollment, error) {
	query := `
        SELECT id, user_id, course_id, expires_at, created_at
        FROM enrollments
        WHERE user_id = $1 AND course_id = $2
    `
	row := r.db.QueryRow(ctx, query, userID, courseID)

	var enrollment domain.Enrollment
	err := row.Scan(&enrollment.ID, &enrollment.UserID, &enrollment.CourseID, &enrollment.ExpiresAt, &enrollment.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find enrollment", zap.Error(err))
		return nil, err
	}
	return &enrollment, nil
}

// UpsertEnrollment creates the enrollment or, on re-enrollment of an expired
// one, refreshes its expiry.
func (r *Repository) UpsertEnrollment(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	query := `
        INSERT INTO enrollments (user_id, course_id, expires_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, course_id)
        DO UPDATE SET expires_at = EXCLUDED.expires_at
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, enrollment.UserID, enrollment.CourseID, enrollment.ExpiresAt).
		Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		zap.L().Error("can't upsert enrollment", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}
