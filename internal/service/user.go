package service

import (
	"wordcards/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates user record if doesn't exist
func (s *UserService) Register(userID int64, displayName string) error {
	return s.userRepo.EnsureUser(userID, displayName)
}
