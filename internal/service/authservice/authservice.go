package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/agendei/professional-api/internal/domain"
	"github.com/agendei/professional-api/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Professional, error)
	Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
}

type Service struct {
	professionalRepo Repo
	hashService      auth.HashServiceInterface
	jwtService       auth.JWTServiceInterface
	denylist         auth.DenylistInterface
	notifier         *Notifier
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, denylist auth.DenylistInterface, notifier *Notifier) *Service {
	return &Service{
		professionalRepo: repo,
		hashService:      hashService,
		jwtService:       jwtService,
		denylist:         denylist,
		notifier:         notifier,
	}
}

const defaultRole = "professional"

func (s *Service) Register(ctx context.Context, email, password, name, specialty string) (*domain.Professional, error) {
	existing, err := s.professionalRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find professional: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("professional already exists, email: ", zap.String("email", email))
		return nil, errors.New("email already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	professional := &domain.Professional{
		ID:           uuid.NewString(),
		Name:         name,
		Specialty:    specialty,
		Role:         defaultRole,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	created, err := s.professionalRepo.Create(ctx, professional)
	if err != nil {
		zap.L().Error("can't create professional: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("professional successfully registered", zap.String("email", email))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Professional, error) {
	professional, err := s.professionalRepo.FindByEmail(ctx, email)
	if err != nil || professional == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(professional.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	s.notifier.Notify(AuthEvent{Type: LoggedIn, ProfessionalID: professional.ID, At: time.Now()})
	zap.L().Info("professional successfully authenticated", zap.String("email", email))
	return professional, nil
}

func (s *Service) GenerateToken(professionalID string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(professionalID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Logout denylists the token until its natural expiry, so the middleware
// rejects it from now on.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return err
	}
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if err := s.denylist.Revoke(ctx, token, ttl); err != nil {
		zap.L().Error("can't revoke token: ", zap.Error(err))
		return err
	}
	s.notifier.Notify(AuthEvent{Type: LoggedOut, ProfessionalID: claims.ProfessionalID, At: time.Now()})
	zap.L().Info("professional logged out", zap.String("professional_id", claims.ProfessionalID))
	return nil
}

// Subscribe exposes auth-state transitions to interested callers.
func (s *Service) Subscribe() <-chan AuthEvent {
	return s.notifier.Subscribe()
}
