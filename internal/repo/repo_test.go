package repo

import (
	"testing"

	courserepo "github.com/coursemart/coursemart/internal/repo/course-repo"
	enrollmentrepo "github.com/coursemart/coursemart/internal/repo/enrollment-repo"
	ledgerrepo "github.com/coursemart/coursemart/internal/repo/ledger-repo"
	userrepo "github.com/coursemart/coursemart/internal/repo/user-repo"
	withdrawalrepo "github.com/coursemart/coursemart/internal/repo/withdrawal-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CourseRepo)
	assert.NotNil(t, repo.EnrollmentRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.WithdrawalRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &courserepo.Repository{}, repo.CourseRepo)
	assert.IsType(t, &enrollmentrepo.Repository{}, repo.EnrollmentRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
