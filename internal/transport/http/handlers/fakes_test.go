package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dstanic/tasknest/internal/domain"
)

// Minimal in-memory repositories for exercising handlers end to end
// without a database.

type memUserRepo struct {
	users []domain.User
}

func (r *memUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			break
		}
	}
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			break
		}
	}
	return nil
}

type memTaskRepo struct {
	tasks []domain.Task
}

func (r *memTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *memTaskRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTaskRepo) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.Title == title {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTaskRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.User == userID {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *memTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = *task
			break
		}
	}
	return nil
}

func (r *memTaskRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			break
		}
	}
	return nil
}
