package repo

import (
	"context"
	"time"

	"github.com/krish-maurya/Daily-Planner/internal/model"
)

// TaskRepository is the storage contract for the tasks collection.
// Every lookup and mutation is scoped by owner: a task owned by someone
// else behaves exactly like a missing one.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, ownerID, id string) (model.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error)
	ListByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]model.Task, error)
	Update(ctx context.Context, ownerID, id string, upd model.TaskUpdate) (model.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
	ToggleCompletion(ctx context.Context, ownerID, id string) (model.Task, error)
}

// GoalRepository mirrors TaskRepository for the goals collection.
type GoalRepository interface {
	Create(ctx context.Context, g model.Goal) (model.Goal, error)
	Get(ctx context.Context, ownerID, id string) (model.Goal, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Goal, error)
	Update(ctx context.Context, ownerID, id string, upd model.GoalUpdate) (model.Goal, error)
	Delete(ctx context.Context, ownerID, id string) error
	SetProgress(ctx context.Context, ownerID, id string, currentValue float64) (model.Goal, error)
}
