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
	ErrNoTasks         = errors.New("no tasks found")
	ErrTitleTaken      = errors.New("duplicate task title")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTaskData = errors.New("invalid task data received")
)

type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, notifier Notifier) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

type CreateTaskInput struct {
	User        string `json:"user"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTaskInput struct {
	ID          string `json:"id"`
	User        string `json:"user"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

// List returns every task joined with its owner's username. Only the
// username is projected from the owning user; a dangling reference yields
// a null owner. An empty store is reported as ErrNoTasks.
func (s *TaskService) List(ctx context.Context) ([]domain.TaskWithOwner, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	owners := make(map[primitive.ObjectID]*domain.TaskOwner)
	out := make([]domain.TaskWithOwner, 0, len(tasks))
	for _, task := range tasks {
		owner, ok := owners[task.User]
		if !ok {
			user, err := s.userRepo.GetByID(ctx, task.User)
			if err != nil {
				return nil, err
			}
			if user != nil {
				owner = &domain.TaskOwner{ID: user.ID, Username: user.Username}
			}
			owners[task.User] = owner
		}
		out = append(out, domain.TaskWithOwner{Task: task, User: owner})
	}
	return out, nil
}

// Create inserts a new task. The user reference is required but its
// existence is not re-validated here; a stale reference is caught by the
// delete-side dependency check instead.
func (s *TaskService) Create(ctx context.Context, userID primitive.ObjectID, input CreateTaskInput) (*domain.Task, error) {
	existing, err := s.taskRepo.GetByTitle(ctx, input.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTitleTaken
	}

	task := &domain.Task{
		User:        userID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTaskData, err)
	}

	if s.notifier != nil {
		s.notifier.TaskCreated(task)
	}

	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	// Renaming a task to its own current title is allowed.
	existing, err := s.taskRepo.GetByTitle(ctx, input.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, ErrTitleTaken
	}

	task.User = userID
	task.Title = input.Title
	task.Description = input.Description
	task.Completed = *input.Completed

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	if s.notifier != nil {
		s.notifier.TaskUpdated(task)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting task: %w", err)
	}

	if s.notifier != nil {
		s.notifier.TaskDeleted(id)
	}

	return task, nil
}
