package dto

import "time"

type ServiceLineDTO struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Price              float64 `json:"price" example:"120"`
	DurationMinutes    int     `json:"duration_minutes" example:"60"`
	UsedPackageSession bool    `json:"used_package_session"`
}

type AppointmentResponseDTO struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	CustomerName    string           `json:"customer_name" example:"Maria Silva"`
	CustomerPhone   string           `json:"customer_phone" example:"+55 11 98765-4321"`
	AppointmentDate time.Time        `json:"appointment_date"`
	Status          string           `json:"status" example:"confirmed"`
	Notes           string           `json:"notes,omitempty"`
	TotalPrice      float64          `json:"total_price" example:"150"`
	Services        []ServiceLineDTO `json:"services"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// UpdateAppointmentRequestDTO carries the writable field set; absent fields
// are left untouched. updated_at is never accepted from the caller.
type UpdateAppointmentRequestDTO struct {
	CustomerName    *string    `json:"customer_name,omitempty"`
	CustomerPhone   *string    `json:"customer_phone,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Status          *string    `json:"status,omitempty" example:"completed"`
	Notes           *string    `json:"notes,omitempty"`
	TotalPrice      *float64   `json:"total_price,omitempty" example:"150"`
}

type UpdateAppointmentResponseDTO struct {
	Message string `json:"message"`
}
