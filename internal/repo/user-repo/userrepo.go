package userrepo

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

const profileColumns = `id, login, password_hash, role, balance, bank_account, referral_code, signup_referral_code, active, created_at`

func (r *Repository) scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Login, &p.PasswordHash, &p.Role, &p.Balance, &p.BankAccount, &p.ReferralCode, &p.SignupReferralCode, &p.Active, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Profile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE login = $1
    `
	profile, err := r.scanProfile(r.db.QueryRow(ctx, query, login))
	if err != nil {
		zap.L().Error("can't find profile by login", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE id = $1
    `
	profile, err := r.scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("can't find profile by id", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Profile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE referral_code = $1
    `
	profile, err := r.scanProfile(r.db.QueryRow(ctx, query, code))
	if err != nil {
		zap.L().Error("can't find profile by referral code", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) ListAdminLogins(ctx context.Context) ([]string, error) {
	query := `
        SELECT login
        FROM profiles
        WHERE role = 'admin' AND active
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list admin logins", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logins []string
	for rows.Next() {
		var login string
		if err := rows.Scan(&login); err != nil {
			zap.L().Error("can't scan admin login row", zap.Error(err))
			return nil, err
		}
		logins = append(logins, login)
	}
	return logins, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
        INSERT INTO profiles (login, password_hash, role, referral_code, signup_referral_code)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, profile.Login, profile.PasswordHash, profile.Role, profile.ReferralCode, profile.SignupReferralCode).
		Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		zap.L().Error("can't create profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
