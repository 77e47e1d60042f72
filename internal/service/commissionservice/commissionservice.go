package commissionservice

import (
	"context"

	"github.com/agendei/professional-api/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByProfessionalID(ctx context.Context, professionalID string) ([]domain.CommissionEntry, error)
}

type AppointmentRepo interface {
	FindCompletedPrices(ctx context.Context, professionalID string) ([]float64, error)
}

type Service struct {
	repo            Repo
	appointmentRepo AppointmentRepo
}

func New(repo Repo, appointmentRepo AppointmentRepo) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
	}
}

// DefaultCommissionRate applies when no dedicated commission records exist.
const DefaultCommissionRate = 0.15

// GetSummary aggregates the professional's commissions. It never fails
// outward: every error degrades to a default summary, so the report screen
// renders zeros instead of crashing.
//
// The rate defaults differ on purpose: a tier-1 query error yields rate 0,
// while a failing completed-appointments fallback yields rate 0.15. The
// asymmetry is inherited behavior and is pinned by the tests.
func (s *Service) GetSummary(ctx context.Context, professionalID string) *domain.CommissionSummary {
	entries, err := s.repo.FindByProfessionalID(ctx, professionalID)
	if err != nil {
		zap.L().Error("failed to get commissions", zap.Error(err))
		return &domain.CommissionSummary{}
	}

	if len(entries) == 0 {
		return s.summaryFromCompleted(ctx, professionalID)
	}

	var amount, revenue, percentageSum float64
	for _, entry := range entries {
		amount += entry.CommissionAmount
		revenue += entry.ServicePrice
		percentageSum += entry.CommissionPercentage
	}

	rate := DefaultCommissionRate
	if len(entries) > 0 {
		rate = percentageSum / float64(len(entries)) / 100
	}

	return &domain.CommissionSummary{
		TotalAppointments: len(entries),
		TotalRevenue:      revenue,
		CommissionAmount:  amount,
		CommissionRate:    rate,
	}
}

// summaryFromCompleted derives a summary from completed appointments at the
// default rate when no commission records exist.
func (s *Service) summaryFromCompleted(ctx context.Context, professionalID string) *domain.CommissionSummary {
	prices, err := s.appointmentRepo.FindCompletedPrices(ctx, professionalID)
	if err != nil {
		zap.L().Error("failed to get completed appointments for commissions", zap.Error(err))
		return &domain.CommissionSummary{CommissionRate: DefaultCommissionRate}
	}

	var revenue float64
	for _, price := range prices {
		revenue += price
	}

	return &domain.CommissionSummary{
		TotalAppointments: len(prices),
		TotalRevenue:      revenue,
		CommissionAmount:  revenue * DefaultCommissionRate,
		CommissionRate:    DefaultCommissionRate,
	}
}
