package commissions

import (
	"context"
	"net/http"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/dto"
	"github.com/agendei/professional-api/pkg/auth"
	"github.com/agendei/professional-api/pkg/utils"
)

type Service interface {
	GetSummary(ctx context.Context, professionalID string) *domain.CommissionSummary
}

type CommissionHandler struct {
	commissionService Service
}

func New(commissionService Service) *CommissionHandler {
	return &CommissionHandler{
		commissionService: commissionService,
	}
}

// GetCommissions godoc
//
//	@Summary		Get commission summary
//	@Description	Get the authenticated professional's commission summary. Always answers 200; internal failures degrade to a zeroed or default-rate summary.
//	@Tags			Commissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CommissionResponseDTO	"Commission summary"
//	@Failure		401	{object}	utils.Response				"Professional not authorized"
//	@Router			/api/professional/commissions [get]
func (h *CommissionHandler) GetCommissions(w http.ResponseWriter, r *http.Request) {
	professionalID, _ := r.Context().Value(auth.ProfessionalIDKey).(string)

	summary := h.commissionService.GetSummary(r.Context(), professionalID)

	utils.RespondWithJSON(w, http.StatusOK, dto.CommissionResponseDTO{
		TotalAppointments: summary.TotalAppointments,
		TotalRevenue:      summary.TotalRevenue,
		CommissionAmount:  summary.CommissionAmount,
		CommissionRate:    summary.CommissionRate,
	})
}
