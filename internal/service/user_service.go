package service

import (
	"context"

	"lendhub/internal/models"
	"lendhub/internal/repository"
)

// UserService implements account management.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput carries the fields accepted at signup.
type CreateUserInput struct {
	Name  string
	Email string
}

// UserPatch is the explicit partial-update payload. Nil fields are
// left untouched; an id in the payload is never applied.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	user := &models.User{Name: in.Name, Email: in.Email}
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Patch merges the provided fields into the stored user, re-validates
// and persists.
func (s *UserService) Patch(ctx context.Context, id uint, patch UserPatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}
