package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dstanic/tasknest/internal/domain"
)

// TaskRepo owns the task timestamps: createdAt/updatedAt are stamped on
// every mutation, callers never set them.
type TaskRepo struct {
	coll *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) *TaskRepo {
	return &TaskRepo{coll: db.Collection("tasks")}
}

func (r *TaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var tasks []domain.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *TaskRepo) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *TaskRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Task, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

func (r *TaskRepo) Create(ctx context.Context, task *domain.Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, task)
	return err
}

func (r *TaskRepo) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"user":        task.User,
		"title":       task.Title,
		"description": task.Description,
		"completed":   task.Completed,
		"updatedAt":   task.UpdatedAt,
	}}
	_, err := r.coll.UpdateByID(ctx, task.ID, update)
	return err
}

func (r *TaskRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *TaskRepo) findOne(ctx context.Context, filter bson.M) (*domain.Task, error) {
	var t domain.Task
	err := r.coll.FindOne(ctx, filter).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
