package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/coursemart/internal/config"
	"github.com/coursemart/coursemart/internal/mailer"
	"github.com/coursemart/coursemart/internal/pg"
	"github.com/coursemart/coursemart/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	cfg := &config.Config{
		CommissionPct: 10,
		FlatBonus:     5,
		MinWithdrawal: 20,
	}
	mail := mailer.New(cfg)
	defer mail.Close()

	services := New(repos, txManager, mail, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.EnrollService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.AccessChecker)
	assert.NotNil(t, services.CourseRepo)
}
