package services

import (
	"context"

	"github.com/friendlink/friendlink/internal/models"
	"github.com/friendlink/friendlink/internal/repository"
)

// UserService handles business logic for user accounts.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetAllUsers returns every registered user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}
