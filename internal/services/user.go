package services

import (
	"context"
	"fmt"

	"eventlane/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a UserService with the given repository.
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	user := &domain.User{Name: name, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrDuplicateEmail {
			return nil, &domain.IntegrityError{Message: fmt.Sprintf("User with email=%s already exists", email)}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, ids []int64, page domain.Page) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx, ids, page)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	err := s.userRepo.Delete(ctx, id)
	if err == domain.ErrNotFound {
		return domain.NotFoundf("User with id=%d was not found.", id)
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
