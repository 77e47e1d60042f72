package appointmentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/pg"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindByProfessionalID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, user_id, professional_id, customer_name, customer_phone, appointment_date, status, notes, total_price, created_at, updated_at FROM appointments WHERE professional_id = $1 ORDER BY appointment_date DESC")
	columns := []string{"id", "user_id", "professional_id", "customer_name", "customer_phone", "appointment_date", "status", "notes", "total_price", "created_at", "updated_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Appointment
	}{
		{
			name: "Appointments exist",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow("apt-2", "u-1", "p-1", "Maria Silva", "+55 11 98765-4321", now, "confirmed", "", 150.0, now, now).
					AddRow("apt-1", "u-1", "p-1", "Joao Santos", "+55 11 91234-5678", now.Add(-24*time.Hour), "completed", "retorno", 80.0, now, now)
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnRows(rows)
			},
			result: []domain.Appointment{
				{ID: "apt-2", UserID: "u-1", ProfessionalID: "p-1", CustomerName: "Maria Silva", CustomerPhone: "+55 11 98765-4321", AppointmentDate: now, Status: "confirmed", TotalPrice: 150.0, CreatedAt: now, UpdatedAt: now},
				{ID: "apt-1", UserID: "u-1", ProfessionalID: "p-1", CustomerName: "Joao Santos", CustomerPhone: "+55 11 91234-5678", AppointmentDate: now.Add(-24 * time.Hour), Status: "completed", Notes: "retorno", TotalPrice: 80.0, CreatedAt: now, UpdatedAt: now},
			},
		},
		{
			name: "No appointments",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnRows(pgxmock.NewRows(columns))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByProfessionalID(context.Background(), "p-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindServicesByAppointmentID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta("SELECT s.id, s.name, aps.price, s.duration_minutes, aps.used_package_session FROM appointment_services aps JOIN services s ON s.id = aps.service_id WHERE aps.appointment_id = $1")
	columns := []string{"id", "name", "price", "duration_minutes", "used_package_session"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.ServiceLine
	}{
		{
			name: "Services exist",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow("svc-1", "Corte", 80.0, 45, false).
					AddRow("svc-2", "Barba", 40.0, 20, true)
				mock.ExpectQuery(query).WithArgs("apt-1").WillReturnRows(rows)
			},
			result: []domain.ServiceLine{
				{ID: "svc-1", Name: "Corte", Price: 80.0, DurationMinutes: 45},
				{ID: "svc-2", Name: "Barba", Price: 40.0, DurationMinutes: 20, UsedPackageSession: true},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("apt-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindServicesByAppointmentID(context.Background(), "apt-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindCompletedPrices(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta("SELECT total_price FROM appointments WHERE professional_id = $1 AND status = 'completed'")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []float64
	}{
		{
			name: "Completed appointments exist",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"total_price"}).AddRow(80.0).AddRow(120.0)
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnRows(rows)
			},
			result: []float64{80, 120},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("p-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindCompletedPrices(context.Background(), "p-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)
	now := time.Now()
	status := domain.CompletedStatus
	notes := "cliente confirmou"

	tests := []struct {
		name      string
		upd       *domain.AppointmentUpdate
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Updates only the provided fields",
			upd:  &domain.AppointmentUpdate{Status: &status, Notes: &notes},
			mockSetup: func() {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, notes = $2, updated_at = $3 WHERE id = $4")).
					WithArgs(status, notes, now, "apt-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			upd:  &domain.AppointmentUpdate{Status: &status},
			mockSetup: func() {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3")).
					WithArgs(status, now, "apt-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), "apt-1", tt.upd, now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
