package service

import (
	authhandlers "github.com/coursemart/coursemart/internal/handlers/auth"
	balancehandlers "github.com/coursemart/coursemart/internal/handlers/balance"
	"github.com/coursemart/coursemart/internal/handlers/courses"
	enrollmenthandlers "github.com/coursemart/coursemart/internal/handlers/enrollment"
	withdrawalhandlers "github.com/coursemart/coursemart/internal/handlers/withdrawal"

	pkgauth "github.com/coursemart/coursemart/pkg/auth"

	"github.com/coursemart/coursemart/internal/config"
	"github.com/coursemart/coursemart/internal/mailer"
	"github.com/coursemart/coursemart/internal/pg"
	"github.com/coursemart/coursemart/internal/repo"
	"github.com/coursemart/coursemart/internal/service/authservice"
	"github.com/coursemart/coursemart/internal/service/enrollservice"
	"github.com/coursemart/coursemart/internal/service/ledgerservice"
	"github.com/coursemart/coursemart/internal/service/referralservice"
	"github.com/coursemart/coursemart/internal/service/withdrawalservice"
)

type Services struct {
	AuthService       authhandlers.Service
	EnrollService     enrollmenthandlers.Service
	LedgerService     balancehandlers.Service
	WithdrawalService withdrawalhandlers.Service
	AccessChecker     courses.AccessChecker
	CourseRepo        courses.CourseRepo
}

func New(repos *repo.Repositories, txManager pg.TXManager, mail *mailer.Service, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repos.LedgerRepo, txManager)
	referralService := referralservice.New(repos.UserRepo, repos.CourseRepo, repos.EnrollmentRepo, ledgerService, mail, referralservice.Policy{
		CommissionPct: cfg.CommissionPct,
		FlatBonus:     cfg.FlatBonus,
	})
	enrollService := enrollservice.New(repos.EnrollmentRepo, repos.CourseRepo, repos.UserRepo, referralService, txManager, mail)
	withdrawalService := withdrawalservice.New(repos.WithdrawalRepo, ledgerService, repos.UserRepo, txManager, mail, cfg.MinWithdrawal)
	authService := authservice.New(repos.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		EnrollService:     enrollService,
		LedgerService:     ledgerService,
		WithdrawalService: withdrawalService,
		AccessChecker:     enrollService,
		CourseRepo:        repos.CourseRepo,
	}
}
