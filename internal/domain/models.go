package domain

import "time"

type Profile struct {
	ID                 int       `db:"id"`
	Login              string    `db:"login"`
	PasswordHash       string    `db:"password_hash"`
	Role               string    `db:"role"`
	Balance            float64   `db:"balance"`
	BankAccount        *string   `db:"bank_account"`
	ReferralCode       string    `db:"referral_code"`
	SignupReferralCode *string   `db:"signup_referral_code"`
	Active             bool      `db:"active"`
	CreatedAt          time.Time `db:"created_at"`
}

type Course struct {
	ID         int       `db:"id"`
	Title      string    `db:"title"`
	Price      float64   `db:"price"`
	AccessDays *int      `db:"access_days"`
	CreatedAt  time.Time `db:"created_at"`
}

type EnrollmentRequest struct {
	ID                 int       `db:"id"`
	UserID             int       `db:"user_id"`
	CourseID           int       `db:"course_id"`
	Status             string    `db:"status"`
	PaymentScreenshots []string  `db:"payment_screenshots"`
	ReferralCode       *string   `db:"referral_code"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type Enrollment struct {
	ID        int        `db:"id"`
	UserID    int        `db:"user_id"`
	CourseID  int        `db:"course_id"`
	ExpiresAt *time.Time `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
}

type BalanceTransaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Amount        float64   `db:"amount"`
	Type          string    `db:"type"`
	Source        string    `db:"source"`
	ReferenceID   int       `db:"reference_id"`
	BalanceBefore float64   `db:"balance_before"`
	BalanceAfter  float64   `db:"balance_after"`
	CreatedAt     time.Time `db:"created_at"`
}

type BalanceSummary struct {
	Balance           float64
	TotalEarned       float64
	TotalWithdrawn    float64
	PendingWithdrawal float64
}

type WithdrawalRequest struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	Amount      float64    `db:"amount"`
	BankAccount string     `db:"bank_account"`
	Status      string     `db:"status"`
	AdminNotes  *string    `db:"admin_notes"`
	ProcessedAt *time.Time `db:"processed_at"`
	ProcessedBy *int       `db:"processed_by"`
	CreatedAt   time.Time  `db:"created_at"`
}
