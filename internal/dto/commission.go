package dto

type CommissionResponseDTO struct {
	TotalAppointments int     `json:"total_appointments" example:"12"`
	TotalRevenue      float64 `json:"total_revenue" example:"1840.5"`
	CommissionAmount  float64 `json:"commission_amount" example:"276.07"`
	CommissionRate    float64 `json:"commission_rate" example:"0.15"`
}
