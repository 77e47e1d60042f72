package commissionrepo

import (
	"context"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByProfessionalID(ctx context.Context, professionalID string) ([]domain.CommissionEntry, error) {
	query := `
        SELECT commission_amount, service_price, commission_percentage
        FROM professional_commissions
        WHERE professional_id = $1
    `
	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		zap.L().Error("can't get professional commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CommissionEntry
	for rows.Next() {
		var entry domain.CommissionEntry
		err := rows.Scan(&entry.CommissionAmount, &entry.ServicePrice, &entry.CommissionPercentage)
		if err != nil {
			zap.L().Error("can't scan commission row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
