package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dstanic/tasknest/internal/domain"
)

// Notifier receives entity change events after a successful mutation.
// Implementations must not block the request path.
type Notifier interface {
	UserCreated(user *domain.User)
	UserUpdated(user *domain.User)
	UserDeleted(id primitive.ObjectID)
	TaskCreated(task *domain.Task)
	TaskUpdated(task *domain.Task)
	TaskDeleted(id primitive.ObjectID)
}
