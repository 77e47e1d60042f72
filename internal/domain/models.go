package domain

import "time"

const (
	// PendingStatus the appointment was booked but not yet confirmed;
	PendingStatus string = "pending"
	// ConfirmedStatus the professional confirmed the booking;
	ConfirmedStatus string = "confirmed"
	// CompletedStatus the service was rendered, appointment counts toward commissions;
	CompletedStatus string = "completed"
	// CancelledStatus the appointment was cancelled;
	CancelledStatus string = "cancelled"
)

type Professional struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Specialty    string    `db:"specialty"`
	Role         string    `db:"role"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type ServiceLine struct {
	ID                 string  `db:"id" json:"id"`
	Name               string  `db:"name" json:"name"`
	Price              float64 `db:"price" json:"price"`
	DurationMinutes    int     `db:"duration_minutes" json:"duration_minutes"`
	UsedPackageSession bool    `db:"used_package_session" json:"used_package_session"`
}

type Appointment struct {
	ID              string        `db:"id"`
	UserID          string        `db:"user_id"`
	ProfessionalID  string        `db:"professional_id"`
	CustomerName    string        `db:"customer_name"`
	CustomerPhone   string        `db:"customer_phone"`
	AppointmentDate time.Time     `db:"appointment_date"`
	Status          string        `db:"status"`
	Notes           string        `db:"notes"`
	TotalPrice      float64       `db:"total_price"`
	Services        []ServiceLine `db:"-"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

// AppointmentUpdate carries the writable subset of an appointment.
// Nil fields are left untouched; updated_at is always stamped by the service.
type AppointmentUpdate struct {
	CustomerName    *string
	CustomerPhone   *string
	AppointmentDate *time.Time
	Status          *string
	Notes           *string
	TotalPrice      *float64
}

type CommissionEntry struct {
	CommissionAmount     float64 `db:"commission_amount"`
	ServicePrice         float64 `db:"service_price"`
	CommissionPercentage float64 `db:"commission_percentage"`
}

type CommissionSummary struct {
	TotalAppointments int     `db:"total_appointments"`
	TotalRevenue      float64 `db:"total_revenue"`
	CommissionAmount  float64 `db:"commission_amount"`
	CommissionRate    float64 `db:"commission_rate"`
}
