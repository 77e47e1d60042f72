package sharedrepo

import (
	"context"
	"encoding/json"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/pg"
	"go.uber.org/zap"
)

// Repository reads the legacy shared_appointment_data table, the secondary
// source consulted when the appointments table has no rows for a
// professional. Services travel inline as a JSON column; user_id does not
// exist in this source and is left blank.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByProfessionalID(ctx context.Context, professionalID string) ([]domain.Appointment, error) {
	query := `
        SELECT appointment_id, professional_id, customer_name, customer_phone, appointment_date, status, notes, total_price, services, created_at, updated_at
        FROM shared_appointment_data
        WHERE professional_id = $1
        ORDER BY appointment_date DESC
    `
	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		zap.L().Error("can't get shared appointment data", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var (
			a        domain.Appointment
			services []byte
		)
		err := rows.Scan(&a.ID, &a.ProfessionalID, &a.CustomerName, &a.CustomerPhone, &a.AppointmentDate, &a.Status, &a.Notes, &a.TotalPrice, &services, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan shared appointment row", zap.Error(err))
			return nil, err
		}
		a.Services = []domain.ServiceLine{}
		if len(services) > 0 {
			if err := json.Unmarshal(services, &a.Services); err != nil {
				zap.L().Error("can't decode shared services payload", zap.String("appointment_id", a.ID), zap.Error(err))
				a.Services = []domain.ServiceLine{}
			}
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
