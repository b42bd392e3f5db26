package repo

import (
	"github.com/coursemart/coursemart/internal/pg"
	courserepo "github.com/coursemart/coursemart/internal/repo/course-repo"
	enrollmentrepo "github.com/coursemart/coursemart/internal/repo/enrollment-repo"
	ledgerrepo "github.com/coursemart/coursemart/internal/repo/ledger-repo"
	userrepo "github.com/coursemart/coursemart/internal/repo/user-repo"
	withdrawalrepo "github.com/coursemart/coursemart/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	CourseRepo     *courserepo.Repository
	EnrollmentRepo *enrollmentrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		CourseRepo:     courserepo.New(conn),
		EnrollmentRepo: enrollmentrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}
