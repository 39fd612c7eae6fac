package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dstanic/tasknest/internal/domain"
)

// In-memory repository doubles. Slices keep insertion order so list
// assertions stay deterministic.

type fakeUserRepo struct {
	users     []domain.User
	createErr error
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTaskRepo struct {
	tasks     []domain.Task
	createErr error
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.Title == title {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.User == userID {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	if r.createErr != nil {
		return r.createErr
	}
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = *task
			return nil
		}
	}
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// recordingNotifier captures the change-feed calls services make.
type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) UserCreated(user *domain.User) { n.events = append(n.events, "user.created") }
func (n *recordingNotifier) UserUpdated(user *domain.User) { n.events = append(n.events, "user.updated") }
func (n *recordingNotifier) UserDeleted(id primitive.ObjectID) {
	n.events = append(n.events, "user.deleted")
}
func (n *recordingNotifier) TaskCreated(task *domain.Task) { n.events = append(n.events, "task.created") }
func (n *recordingNotifier) TaskUpdated(task *domain.Task) { n.events = append(n.events, "task.updated") }
func (n *recordingNotifier) TaskDeleted(id primitive.ObjectID) {
	n.events = append(n.events, "task.deleted")
}
