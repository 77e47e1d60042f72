package professionalrepo

import (
	"context"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Professional, error) {
	var professional domain.Professional
	err := repo.db.QueryRow(ctx, "SELECT id, name, specialty, role, email, password_hash FROM professionals WHERE email = $1", email).
		Scan(&professional.ID, &professional.Name, &professional.Specialty, &professional.Role, &professional.Email, &professional.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find professional", zap.Error(err))
		return nil, err
	}
	return &professional, nil
}

func (repo *Repository) Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error) {
	query := `
		INSERT INTO professionals (id, name, specialty, role, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query,
		professional.ID, professional.Name, professional.Specialty, professional.Role, professional.Email, professional.PasswordHash).
		Scan(&professional.CreatedAt)
	if err != nil {
		zap.L().Error("can't save professional", zap.Error(err))
		return nil, err
	}
	return professional, nil
}
