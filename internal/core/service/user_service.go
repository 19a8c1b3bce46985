package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

// UserService implements user CRUD and role resolution.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		Phone:    input.Phone,
		PhotoURL: input.PhotoURL,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.repo.FindByRole(ctx, role)
}

// GetByEmail returns the user record for email, or nil when none exists.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// RoleOf resolves email to a role with a fresh store lookup per call.
// A missing user is a valid classification result, not an error.
func (s *UserService) RoleOf(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.RoleUnset, err
	}
	if user == nil {
		return domain.RoleUnset, nil
	}
	return user.Role, nil
}

func (s *UserService) IsBuyer(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleOf(ctx, email)
	return role == domain.RoleBuyer, err
}

func (s *UserService) IsSeller(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleOf(ctx, email)
	return role == domain.RoleSeller, err
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleOf(ctx, email)
	return role == domain.RoleAdmin, err
}

// Verify marks the user with the given id as verified.
func (s *UserService) Verify(ctx context.Context, id string) error {
	if err := s.repo.SetVerified(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user verified")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
