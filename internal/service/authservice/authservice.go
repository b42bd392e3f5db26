package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

const (
	StudentRole  string = "student"
	LecturerRole string = "lecturer"
	AdminRole    string = "admin"
)

var ErrLoginTaken = errors.New("login already taken")

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a student profile with a fresh referral code. The referral
// code presented at signup is captured verbatim; it is resolved and validated
// only when a commission is attributed.
func (s *Service) Register(ctx context.Context, login, password, signupReferralCode string) (*domain.Profile, error) {
	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find profile: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("login already taken", zap.String("login", login))
		return nil, ErrLoginTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	profile := &domain.Profile{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         StudentRole,
		ReferralCode: newReferralCode(),
		Active:       true,
	}
	if signupReferralCode != "" {
		profile.SignupReferralCode = &signupReferralCode
	}

	created, err := s.userRepo.Create(ctx, profile)
	if err != nil {
		zap.L().Error("can't create profile: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Profile, error) {
	profile, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || profile == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(profile.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return profile, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func newReferralCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
