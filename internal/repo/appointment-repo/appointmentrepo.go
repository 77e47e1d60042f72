package appointmentrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByProfessionalID(ctx context.Context, professionalID string) ([]domain.Appointment, error) {
	query := `
        SELECT id, user_id, professional_id, customer_name, customer_phone, appointment_date, status, notes, total_price, created_at, updated_at
        FROM appointments
        WHERE professional_id = $1
        ORDER BY appointment_date DESC
    `
	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		zap.L().Error("can't get appointments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		err := rows.Scan(&a.ID, &a.UserID, &a.ProfessionalID, &a.CustomerName, &a.CustomerPhone, &a.AppointmentDate, &a.Status, &a.Notes, &a.TotalPrice, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan appointment row", zap.Error(err))
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

func (r *Repository) FindServicesByAppointmentID(ctx context.Context, appointmentID string) ([]domain.ServiceLine, error) {
	query := `
        SELECT s.id, s.name, aps.price, s.duration_minutes, aps.used_package_session
        FROM appointment_services aps
        JOIN services s ON s.id = aps.service_id
        WHERE aps.appointment_id = $1
    `
	rows, err := r.db.Query(ctx, query, appointmentID)
	if err != nil {
		zap.L().Error("can't get appointment services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lines []domain.ServiceLine
	for rows.Next() {
		var line domain.ServiceLine
		err := rows.Scan(&line.ID, &line.Name, &line.Price, &line.DurationMinutes, &line.UsedPackageSession)
		if err != nil {
			zap.L().Error("can't scan service line row", zap.Error(err))
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *Repository) FindCompletedPrices(ctx context.Context, professionalID string) ([]float64, error) {
	query := `
        SELECT total_price
        FROM appointments
        WHERE professional_id = $1 AND status = 'completed'
    `
	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		zap.L().Error("can't get completed appointments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var prices []float64
	for rows.Next() {
		var price float64
		if err := rows.Scan(&price); err != nil {
			zap.L().Error("can't scan completed appointment row", zap.Error(err))
			return nil, err
		}
		prices = append(prices, price)
	}
	return prices, nil
}

// Update writes the non-nil fields of upd plus the updated_at stamp.
func (r *Repository) Update(ctx context.Context, id string, upd *domain.AppointmentUpdate, updatedAt time.Time) error {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.CustomerName != nil {
		add("customer_name", *upd.CustomerName)
	}
	if upd.CustomerPhone != nil {
		add("customer_phone", *upd.CustomerPhone)
	}
	if upd.AppointmentDate != nil {
		add("appointment_date", *upd.AppointmentDate)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if upd.TotalPrice != nil {
		add("total_price", *upd.TotalPrice)
	}
	add("updated_at", updatedAt)

	args = append(args, id)
	query := fmt.Sprintf("UPDATE appointments SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			zap.L().Error("failed to update appointment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
