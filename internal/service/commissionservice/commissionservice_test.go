package commissionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAppointmentRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	appointmentRepo := NewMockAppointmentRepo(ctrl)
	service := New(repo, appointmentRepo)
	defer ctrl.Finish()
	return service, repo, appointmentRepo
}

const professionalID = "3f8e8a3e-7c35-4a31-b7b2-8a2f9b13f001"

func TestGetSummary(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo, appointmentRepo *MockAppointmentRepo)
		expected    *domain.CommissionSummary
	}{
		{
			name: "Commission rows present",
			prepareMock: func(repo *MockRepo, appointmentRepo *MockAppointmentRepo) {
				repo.EXPECT().FindByProfessionalID(gomock.Any(), professionalID).Return([]domain.CommissionEntry{
					{CommissionAmount: 10, ServicePrice: 100, CommissionPercentage: 20},
					{CommissionAmount: 15, ServicePrice: 100, CommissionPercentage: 10},
				}, nil)
			},
			expected: &domain.CommissionSummary{
				TotalAppointments: 2,
				TotalRevenue:      200,
				CommissionAmount:  25,
				CommissionRate:    0.15,
			},
		},
		{
			name: "Commission query error yields zero rate",
			prepareMock: func(repo *MockRepo, appointmentRepo *MockAppointmentRepo) {
				repo.EXPECT().FindByProfessionalID(gomock.Any(), professionalID).Return(nil, errors.New("db error"))
			},
			expected: &domain.CommissionSummary{},
		},
		{
			name: "Fallback from completed appointments",
			prepareMock: func(repo *MockRepo, appointmentRepo *MockAppointmentRepo) {
				repo.EXPECT().FindByProfessionalID(gomock.Any(), professionalID).Return(nil, nil)
				appointmentRepo.EXPECT().FindCompletedPrices(gomock.Any(), professionalID).Return([]float64{80, 120}, nil)
			},
			expected: &domain.CommissionSummary{
				TotalAppointments: 2,
				TotalRevenue:      200,
				CommissionAmount:  30,
				CommissionRate:    0.15,
			},
		},
		{
			name: "Fallback query error yields default rate",
			prepareMock: func(repo *MockRepo, appointmentRepo *MockAppointmentRepo) {
				repo.EXPECT().FindByProfessionalID(gomock.Any(), professionalID).Return(nil, nil)
				appointmentRepo.EXPECT().FindCompletedPrices(gomock.Any(), professionalID).Return(nil, errors.New("db error"))
			},
			expected: &domain.CommissionSummary{CommissionRate: 0.15},
		},
		{
			name: "No data anywhere",
			prepareMock: func(repo *MockRepo, appointmentRepo *MockAppointmentRepo) {
				repo.EXPECT().FindByProfessionalID(gomock.Any(), professionalID).Return(nil, nil)
				appointmentRepo.EXPECT().FindCompletedPrices(gomock.Any(), professionalID).Return(nil, nil)
			},
			expected: &domain.CommissionSummary{CommissionRate: 0.15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, appointmentRepo := NewMock(t)
			tt.prepareMock(repo, appointmentRepo)

			summary := service.GetSummary(context.Background(), professionalID)

			assert.Equal(t, tt.expected, summary)
		})
	}
}
