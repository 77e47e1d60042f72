package service

import (
	"github.com/agendei/professional-api/internal/handlers/appointments"
	"github.com/agendei/professional-api/internal/handlers/auth"
	"github.com/agendei/professional-api/internal/handlers/commissions"

	pkgauth "github.com/agendei/professional-api/pkg/auth"

	"github.com/agendei/professional-api/internal/repo"
	appointmentservice "github.com/agendei/professional-api/internal/service/appointmentservice"
	authservice "github.com/agendei/professional-api/internal/service/authservice"
	commissionservice "github.com/agendei/professional-api/internal/service/commissionservice"
)

type Services struct {
	AuthService        auth.Service
	AppointmentService appointments.Service
	CommissionService  commissions.Service
}

func New(repo *repo.Repositories, denylist pkgauth.DenylistInterface) *Services {
	appointmentService := appointmentservice.New(repo.AppointmentRepo, repo.SharedRepo)
	commissionService := commissionservice.New(repo.CommissionRepo, repo.CompletedRepo)
	authService := authservice.New(repo.ProfessionalRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, denylist, authservice.NewNotifier())

	return &Services{
		AuthService:        authService,
		AppointmentService: appointmentService,
		CommissionService:  commissionService,
	}
}
