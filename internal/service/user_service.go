package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dstanic/tasknest/internal/domain"
	"github.com/dstanic/tasknest/internal/repository"
)

var (
	ErrNoUsers         = errors.New("no users found")
	ErrEmailTaken      = errors.New("email already exist")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserHasTasks    = errors.New("user has assigned tasks")
	ErrInvalidUserData = errors.New("invalid user data received")
)

type UserService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
	notifier Notifier
}

func NewUserService(userRepo repository.UserRepository, taskRepo repository.TaskRepository, notifier Notifier) *UserService {
	return &UserService{
		userRepo: userRepo,
		taskRepo: taskRepo,
		notifier: notifier,
	}
}

type CreateUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type UpdateUserInput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   *bool  `json:"active"`
	Password string `json:"password"`
}

// List returns every user. An empty store is reported as ErrNoUsers, not
// as an empty slice; callers rely on that distinction.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUserData, err)
	}

	if s.notifier != nil {
		s.notifier.UserCreated(user)
	}

	return user, nil
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// A user may keep its own email; only another user's email conflicts.
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, ErrEmailTaken
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Active = *input.Active

	if input.Password != "" {
		hash, err := hashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Password = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	if s.notifier != nil {
		s.notifier.UserUpdated(user)
	}

	return user, nil
}

// Delete removes a user unless a task still references it. The dependency
// check runs before the existence check, matching the order callers observe.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	task, err := s.taskRepo.GetByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if task != nil {
		return nil, ErrUserHasTasks
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}

	if s.notifier != nil {
		s.notifier.UserDeleted(id)
	}

	return user, nil
}
