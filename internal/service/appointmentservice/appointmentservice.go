package appointmentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendei/professional-api/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	FindByProfessionalID(ctx context.Context, professionalID string) ([]domain.Appointment, error)
	FindServicesByAppointmentID(ctx context.Context, appointmentID string) ([]domain.ServiceLine, error)
	Update(ctx context.Context, id string, upd *domain.AppointmentUpdate, updatedAt time.Time) error
}

// SharedRepo is the legacy secondary source, consulted only when the primary
// table has no rows for the professional.
type SharedRepo interface {
	FindByProfessionalID(ctx context.Context, professionalID string) ([]domain.Appointment, error)
}

type Service struct {
	repo       Repo
	sharedRepo SharedRepo
}

func New(repo Repo, sharedRepo SharedRepo) *Service {
	return &Service{
		repo:       repo,
		sharedRepo: sharedRepo,
	}
}

var (
	ErrNotAuthenticated  = errors.New("no professional in session")
	ErrSourceUnavailable = errors.New("appointment source unavailable")
)

// joinConcurrency bounds the per-appointment service-join fan-out.
const joinConcurrency = 8

// GetAppointments returns the professional's appointments, most recent
// first. A hard error on the primary table surfaces ErrSourceUnavailable and
// never falls through to the secondary source; an empty primary result does.
func (s *Service) GetAppointments(ctx context.Context, professionalID string) ([]domain.Appointment, error) {
	if professionalID == "" {
		return nil, ErrNotAuthenticated
	}

	appointments, err := s.repo.FindByProfessionalID(ctx, professionalID)
	if err != nil {
		zap.L().Error("failed to get appointments", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if len(appointments) == 0 {
		shared, err := s.sharedRepo.FindByProfessionalID(ctx, professionalID)
		if err != nil {
			zap.L().Error("failed to get shared appointment data", zap.Error(err))
			return []domain.Appointment{}, nil
		}
		if len(shared) == 0 {
			return []domain.Appointment{}, nil
		}
		zap.L().Info("using shared appointment data", zap.String("professional_id", professionalID), zap.Int("count", len(shared)))
		return shared, nil
	}

	s.attachServices(ctx, appointments)
	return appointments, nil
}

// attachServices joins service lines onto every appointment concurrently.
// A failed join empties that appointment's list only; it never hides the
// rest of the batch.
func (s *Service) attachServices(ctx context.Context, appointments []domain.Appointment) {
	var g errgroup.Group
	g.SetLimit(joinConcurrency)
	for i := range appointments {
		i := i
		g.Go(func() error {
			lines, err := s.repo.FindServicesByAppointmentID(ctx, appointments[i].ID)
			if err != nil {
				zap.L().Error("failed to get services for appointment",
					zap.String("appointment_id", appointments[i].ID), zap.Error(err))
				appointments[i].Services = []domain.ServiceLine{}
				return nil
			}
			if lines == nil {
				lines = []domain.ServiceLine{}
			}
			appointments[i].Services = lines
			return nil
		})
	}
	g.Wait()
}

// UpdateAppointment writes the non-nil fields of upd. updated_at is stamped
// with the call time regardless of anything the caller carries.
func (s *Service) UpdateAppointment(ctx context.Context, id string, upd *domain.AppointmentUpdate) error {
	if err := s.repo.Update(ctx, id, upd, time.Now()); err != nil {
		zap.L().Error("failed to update appointment", zap.String("appointment_id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return nil
}
