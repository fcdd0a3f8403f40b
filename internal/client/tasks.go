package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/krish-maurya/Daily-Planner/internal/model"
)

// TaskSet mirrors the caller's task collection.
type TaskSet struct {
	client *Client

	mu    sync.Mutex
	items []model.Task
}

// Refresh fetches the full collection and replaces the mirror.
func (s *TaskSet) Refresh(ctx context.Context) error {
	var fetched []model.Task
	if err := s.client.do(ctx, http.MethodGet, "/tasks", nil, &fetched); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = fetched
	s.mu.Unlock()
	return nil
}

// All returns a copy of the mirrored collection.
func (s *TaskSet) All() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.items))
	copy(out, s.items)
	return out
}

func (s *TaskSet) Add(ctx context.Context, t model.Task) (model.Task, error) {
	var created model.Task
	if err := s.client.do(ctx, http.MethodPost, "/tasks/addtask", t, &created); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

func (s *TaskSet) Update(ctx context.Context, id string, upd model.TaskUpdate) (model.Task, error) {
	var updated model.Task
	if err := s.client.do(ctx, http.MethodPut, "/tasks/"+id, upd, &updated); err != nil {
		return model.Task{}, err
	}

	s.replace(updated)
	return updated, nil
}

func (s *TaskSet) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, t := range s.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

func (s *TaskSet) Toggle(ctx context.Context, id string) (model.Task, error) {
	var toggled model.Task
	if err := s.client.do(ctx, http.MethodPut, "/tasks/complete/"+id, nil, &toggled); err != nil {
		return model.Task{}, err
	}

	s.replace(toggled)
	return toggled, nil
}

// On filters the mirror by calendar day, locally.
func (s *TaskSet) On(day time.Time) []model.Task {
	y, m, d := day.Date()

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Task
	for _, t := range s.items {
		ty, tm, td := t.Date.Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}
	return out
}

func (s *TaskSet) replace(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == t.ID {
			s.items[i] = t
			return
		}
	}
}
