package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/krish-maurya/Daily-Planner/internal/model"
	"github.com/krish-maurya/Daily-Planner/internal/repo"
)

var ErrValidation = errors.New("validation error")

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create persists a task for ownerID. The owner always comes from the
// authenticated identity; anything the client put in the body is discarded.
func (s *TaskService) Create(ctx context.Context, ownerID string, t model.Task) (model.Task, error) {
	t.ID = ""
	t.OwnerID = ownerID
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	if err := s.validate(t); err != nil {
		return t, err
	}
	return s.repo.Create(ctx, t)
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListByMonth returns the caller's tasks inside a YYYY-MM month, interpreted
// in server-local time.
func (s *TaskService) ListByMonth(ctx context.Context, ownerID, month string) ([]model.Task, error) {
	from, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid month %q", ErrValidation, month)
	}
	to := from.AddDate(0, 1, 0)
	return s.repo.ListByDateRange(ctx, ownerID, from, to)
}

func (s *TaskService) Update(ctx context.Context, ownerID, id string, upd model.TaskUpdate) (model.Task, error) {
	if err := s.validateUpdate(upd); err != nil {
		return model.Task{}, err
	}
	return s.repo.Update(ctx, ownerID, id, upd)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}

func (s *TaskService) ToggleCompletion(ctx context.Context, ownerID, id string) (model.Task, error) {
	return s.repo.ToggleCompletion(ctx, ownerID, id)
}

func (s *TaskService) validate(t model.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !slices.Contains(model.TaskCategories, t.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, t.Category)
	}
	if !slices.Contains(model.TaskPriorities, t.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, t.Priority)
	}
	return nil
}

func (s *TaskService) validateUpdate(upd model.TaskUpdate) error {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}
	if upd.Category != nil && !slices.Contains(model.TaskCategories, *upd.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *upd.Category)
	}
	if upd.Priority != nil && !slices.Contains(model.TaskPriorities, *upd.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, *upd.Priority)
	}
	return nil
}
