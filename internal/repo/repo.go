package repo

import (
	"github.com/agendei/professional-api/internal/pg"
	appointmentrepo "github.com/agendei/professional-api/internal/repo/appointment-repo"
	commissionrepo "github.com/agendei/professional-api/internal/repo/commission-repo"
	professionalrepo "github.com/agendei/professional-api/internal/repo/professional-repo"
	sharedrepo "github.com/agendei/professional-api/internal/repo/shared-repo"
	"github.com/agendei/professional-api/internal/service/appointmentservice"
	"github.com/agendei/professional-api/internal/service/authservice"
	"github.com/agendei/professional-api/internal/service/commissionservice"
)

type Repositories struct {
	ProfessionalRepo authservice.Repo
	AppointmentRepo  appointmentservice.Repo
	SharedRepo       appointmentservice.SharedRepo
	CommissionRepo   commissionservice.Repo
	// CompletedRepo is the appointments table seen through the commission
	// fallback tier; it shares the concrete repository with AppointmentRepo.
	CompletedRepo commissionservice.AppointmentRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	professionalRepo := professionalrepo.New(conn)
	appointmentRepo := appointmentrepo.New(conn, txManager)
	sharedRepo := sharedrepo.New(conn)
	commissionRepo := commissionrepo.New(conn)

	return &Repositories{
		ProfessionalRepo: professionalRepo,
		AppointmentRepo:  appointmentRepo,
		SharedRepo:       sharedRepo,
		CommissionRepo:   commissionRepo,
		CompletedRepo:    appointmentRepo,
	}
}
