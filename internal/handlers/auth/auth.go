package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/dto"
	pkgauth "github.com/agendei/professional-api/pkg/auth"
	"github.com/agendei/professional-api/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, password, name, specialty string) (*domain.Professional, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Professional, error)
	GenerateToken(professionalID string) (string, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new professional
//	@Description	Create a professional account with email, password, name and specialty
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Professional already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/professional/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	professional, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name, req.Specialty)
	if err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	token, err := h.authService.GenerateToken(professional.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "Professional successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate professional
//	@Description	Log in with a professional account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/professional/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	professional, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}
	token, err := h.authService.GenerateToken(professional.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Professional successfully authenticated",
		Professional: dto.ProfessionalDTO{
			ID:        professional.ID,
			Name:      professional.Name,
			Specialty: professional.Specialty,
			Role:      professional.Role,
		},
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Revoke the current token until its natural expiry
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Failure		401	{object}	utils.Response	"Professional not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/professional/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(pkgauth.TokenKey).(string)
	if token == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.authService.Logout(r.Context(), token); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{
		Message: "Professional successfully logged out",
	})
}
