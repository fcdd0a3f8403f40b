package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/krish-maurya/Daily-Planner/internal/model"
)

// GoalSet mirrors the caller's goal collection.
type GoalSet struct {
	client *Client

	mu    sync.Mutex
	items []model.Goal
}

// Refresh fetches the full collection and replaces the mirror.
func (s *GoalSet) Refresh(ctx context.Context) error {
	var fetched []model.Goal
	if err := s.client.do(ctx, http.MethodGet, "/goals", nil, &fetched); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = fetched
	s.mu.Unlock()
	return nil
}

// All returns a copy of the mirrored collection.
func (s *GoalSet) All() []model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Goal, len(s.items))
	copy(out, s.items)
	return out
}

func (s *GoalSet) Add(ctx context.Context, g model.Goal) (model.Goal, error) {
	var created model.Goal
	if err := s.client.do(ctx, http.MethodPost, "/goals/addgoal", g, &created); err != nil {
		return model.Goal{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

func (s *GoalSet) Update(ctx context.Context, id string, upd model.GoalUpdate) (model.Goal, error) {
	var updated model.Goal
	if err := s.client.do(ctx, http.MethodPut, "/goals/"+id, upd, &updated); err != nil {
		return model.Goal{}, err
	}

	s.replace(updated)
	return updated, nil
}

func (s *GoalSet) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/goals/"+id, nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, g := range s.items {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

// SetProgress writes the raw value to the server and returns what the
// server stored. The mirror clamps to [0, targetValue] for display, the
// bound the original interface enforced.
func (s *GoalSet) SetProgress(ctx context.Context, id string, value float64) (model.Goal, error) {
	var updated model.Goal
	if err := s.client.do(ctx, http.MethodPut, "/goals/progress/"+id, model.ProgressUpdate{CurrentValue: value}, &updated); err != nil {
		return model.Goal{}, err
	}

	mirrored := updated
	if mirrored.CurrentValue > mirrored.TargetValue {
		mirrored.CurrentValue = mirrored.TargetValue
	}
	if mirrored.CurrentValue < 0 {
		mirrored.CurrentValue = 0
	}
	s.replace(mirrored)
	return updated, nil
}

func (s *GoalSet) replace(g model.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == g.ID {
			s.items[i] = g
			return
		}
	}
}
