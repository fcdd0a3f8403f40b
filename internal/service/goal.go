package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/krish-maurya/Daily-Planner/internal/model"
	"github.com/krish-maurya/Daily-Planner/internal/repo"
)

type GoalService struct {
	repo repo.GoalRepository
}

func NewGoalService(repo repo.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// Create persists a goal for ownerID. Progress always starts at zero,
// whatever the client sent.
func (s *GoalService) Create(ctx context.Context, ownerID string, g model.Goal) (model.Goal, error) {
	g.ID = ""
	g.OwnerID = ownerID
	g.CurrentValue = 0
	if err := s.validate(g); err != nil {
		return g, err
	}
	return s.repo.Create(ctx, g)
}

func (s *GoalService) List(ctx context.Context, ownerID string) ([]model.Goal, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *GoalService) Update(ctx context.Context, ownerID, id string, upd model.GoalUpdate) (model.Goal, error) {
	if err := s.validateUpdate(upd); err != nil {
		return model.Goal{}, err
	}
	return s.repo.Update(ctx, ownerID, id, upd)
}

func (s *GoalService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// SetProgress stores currentValue as-is. Values past the target are allowed
// (overachievement); completion stays a derived property.
func (s *GoalService) SetProgress(ctx context.Context, ownerID, id string, currentValue float64) (model.Goal, error) {
	return s.repo.SetProgress(ctx, ownerID, id, currentValue)
}

func (s *GoalService) validate(g model.Goal) error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(g.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if g.TargetValue <= 0 {
		return fmt.Errorf("%w: targetValue must be positive", ErrValidation)
	}
	if strings.TrimSpace(g.Unit) == "" {
		return fmt.Errorf("%w: unit is required", ErrValidation)
	}
	if !slices.Contains(model.GoalCategories, g.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, g.Category)
	}
	if g.Deadline.IsZero() {
		return fmt.Errorf("%w: deadline is required", ErrValidation)
	}
	return nil
}

func (s *GoalService) validateUpdate(upd model.GoalUpdate) error {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}
	if upd.TargetValue != nil && *upd.TargetValue <= 0 {
		return fmt.Errorf("%w: targetValue must be positive", ErrValidation)
	}
	if upd.Unit != nil && strings.TrimSpace(*upd.Unit) == "" {
		return fmt.Errorf("%w: unit cannot be empty", ErrValidation)
	}
	if upd.Category != nil && !slices.Contains(model.GoalCategories, *upd.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *upd.Category)
	}
	return nil
}
