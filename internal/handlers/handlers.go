package handlers

import (
	"net/http"

	_ "github.com/agendei/professional-api/docs"
	appointmenthandlers "github.com/agendei/professional-api/internal/handlers/appointments"
	authhandlers "github.com/agendei/professional-api/internal/handlers/auth"
	commissionhandlers "github.com/agendei/professional-api/internal/handlers/commissions"
	"github.com/agendei/professional-api/internal/service"
	"github.com/agendei/professional-api/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AppointmentHandler interface {
	GetAppointments(w http.ResponseWriter, r *http.Request)
	UpdateAppointment(w http.ResponseWriter, r *http.Request)
}

type CommissionHandler interface {
	GetCommissions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	AppointmentHandler AppointmentHandler
	CommissionHandler  CommissionHandler

	denylist auth.DenylistInterface
}

func New(s *service.Services, denylist auth.DenylistInterface) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		AppointmentHandler: appointmenthandlers.New(s.AppointmentService),
		CommissionHandler:  commissionhandlers.New(s.CommissionService),
		denylist:           denylist,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/professional", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.denylist))
			r.Post("/logout", h.AuthHandler.Logout)
			r.Route("/appointments", func(r chi.Router) {
				r.Get("/", h.AppointmentHandler.GetAppointments)
				r.Patch("/{id}", h.AppointmentHandler.UpdateAppointment)
			})
			r.Get("/commissions", h.CommissionHandler.GetCommissions)
		})
	})

	return r
}
