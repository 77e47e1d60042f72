package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/dto"
	appointmentservice "github.com/agendei/professional-api/internal/service/appointmentservice"
	"github.com/agendei/professional-api/pkg/auth"
	"github.com/agendei/professional-api/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetAppointments(ctx context.Context, professionalID string) ([]domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, upd *domain.AppointmentUpdate) error
}

type AppointmentHandler struct {
	appointmentService Service
}

func New(appointmentService Service) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// GetAppointments godoc
//
//	@Summary		Get appointments
//	@Description	Get the authenticated professional's appointments with their service lines, most recent first
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AppointmentResponseDTO	"Appointments"
//	@Success		204	"No appointments found"
//	@Failure		401	{object}	utils.Response				"Professional not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/professional/appointments [get]
func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	professionalID, _ := r.Context().Value(auth.ProfessionalIDKey).(string)

	appointments, err := h.appointmentService.GetAppointments(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentservice.ErrNotAuthenticated):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch appointments")
		}
		return
	}

	if len(appointments) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.AppointmentResponseDTO, len(appointments))
	for i, a := range appointments {
		services := make([]dto.ServiceLineDTO, len(a.Services))
		for j, line := range a.Services {
			services[j] = dto.ServiceLineDTO{
				ID:                 line.ID,
				Name:               line.Name,
				Price:              line.Price,
				DurationMinutes:    line.DurationMinutes,
				UsedPackageSession: line.UsedPackageSession,
			}
		}
		response[i] = dto.AppointmentResponseDTO{
			ID:              a.ID,
			UserID:          a.UserID,
			CustomerName:    a.CustomerName,
			CustomerPhone:   a.CustomerPhone,
			AppointmentDate: a.AppointmentDate,
			Status:          a.Status,
			Notes:           a.Notes,
			TotalPrice:      a.TotalPrice,
			Services:        services,
			CreatedAt:       a.CreatedAt,
			UpdatedAt:       a.UpdatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateAppointment godoc
//
//	@Summary		Update an appointment
//	@Description	Update the writable fields of an appointment; updated_at is stamped server-side. Clients re-fetch the list after a successful update.
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Appointment id"
//	@Param			request	body		dto.UpdateAppointmentRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.UpdateAppointmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Professional not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/professional/appointments/{id} [patch]
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing appointment id")
		return
	}

	var req dto.UpdateAppointmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := &domain.AppointmentUpdate{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		Status:          req.Status,
		Notes:           req.Notes,
		TotalPrice:      req.TotalPrice,
	}

	if err := h.appointmentService.UpdateAppointment(r.Context(), id, upd); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateAppointmentResponseDTO{
		Message: "Appointment successfully updated",
	})
}
