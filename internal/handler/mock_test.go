package handler

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/krish-maurya/Daily-Planner/internal/auth"
	"github.com/krish-maurya/Daily-Planner/internal/model"
	"github.com/krish-maurya/Daily-Planner/internal/service"
)

const testSecret = "handler-test-secret"

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *mockTaskRepo) Get(ctx context.Context, ownerID, id string) (model.Task, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *mockTaskRepo) ListByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]model.Task, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *mockTaskRepo) Update(ctx context.Context, ownerID, id string, upd model.TaskUpdate) (model.Task, error) {
	args := m.Called(ctx, ownerID, id, upd)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *mockTaskRepo) ToggleCompletion(ctx context.Context, ownerID, id string) (model.Task, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(model.Task), args.Error(1)
}

type mockGoalRepo struct {
	mock.Mock
}

func (m *mockGoalRepo) Create(ctx context.Context, g model.Goal) (model.Goal, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *mockGoalRepo) Get(ctx context.Context, ownerID, id string) (model.Goal, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *mockGoalRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Goal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *mockGoalRepo) Update(ctx context.Context, ownerID, id string, upd model.GoalUpdate) (model.Goal, error) {
	args := m.Called(ctx, ownerID, id, upd)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *mockGoalRepo) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *mockGoalRepo) SetProgress(ctx context.Context, ownerID, id string, currentValue float64) (model.Goal, error) {
	args := m.Called(ctx, ownerID, id, currentValue)
	return args.Get(0).(model.Goal), args.Error(1)
}

func setupRouter(t *testing.T) (chi.Router, *mockTaskRepo, *mockGoalRepo) {
	t.Helper()

	taskRepo := new(mockTaskRepo)
	goalRepo := new(mockGoalRepo)
	logger := zap.NewNop()

	tasks := NewTaskHandler(service.NewTaskService(taskRepo), logger)
	goals := NewGoalHandler(service.NewGoalService(goalRepo), logger)

	return NewRouter(tasks, goals, testSecret, logger), taskRepo, goalRepo
}

func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.Sign(testSecret, userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}
