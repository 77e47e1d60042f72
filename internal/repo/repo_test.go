package repo

import (
	"testing"

	"github.com/agendei/professional-api/internal/pg"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repositories := New(mockDB, pg.NewMockTXManager(ctrl))

	assert.NotNil(t, repositories)
	assert.NotNil(t, repositories.ProfessionalRepo)
	assert.NotNil(t, repositories.AppointmentRepo)
	assert.NotNil(t, repositories.SharedRepo)
	assert.NotNil(t, repositories.CommissionRepo)
	// the commission fallback tier reads the appointments table through the
	// same concrete repository
	assert.Same(t, repositories.AppointmentRepo, repositories.CompletedRepo)
}
