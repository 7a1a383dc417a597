package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reqres/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
	now      func() time.Time
}

// NewUserService creates a UserService over the given repository.
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &userService{userRepo: userRepo, now: time.Now}
}

// List paginates a single snapshot taken from the repository.
func (s *userService) List(ctx context.Context, req domain.PageRequest) (domain.PageResult[*domain.User], error) {
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return domain.PageResult[*domain.User]{}, fmt.Errorf("failed to list users: %w", err)
	}
	return domain.Paginate(users, req)
}

func (s *userService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, name, job string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	job = strings.TrimSpace(job)
	user := &domain.User{Name: &name, Job: &job}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Replace overwrites every field of the stored user with the given one.
func (s *userService) Replace(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.UpdatedAt = s.now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) Patch(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*patch.Email))
		patch.Email = &email
	}
	patch.Apply(user)
	user.UpdatedAt = s.now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *userService) HasUsers(ctx context.Context) (bool, error) {
	n, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return n > 0, nil
}
