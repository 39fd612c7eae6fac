package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Completed   bool               `bson:"completed" json:"completed"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TaskOwner is the username-only projection of the user a task belongs to.
type TaskOwner struct {
	ID       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
}

// TaskWithOwner is the list-view shape: the task plus its owner projection.
// The owner replaces the raw user reference in the JSON output.
type TaskWithOwner struct {
	Task
	User *TaskOwner `json:"user"`
}
