package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/krish-maurya/Daily-Planner/internal/model"
)

func sampleGoal(owner string) model.Goal {
	return model.Goal{
		OwnerID:     owner,
		Title:       "Read books",
		Description: "Read more this year",
		TargetValue: 10,
		Unit:        "books",
		Category:    "learning",
		Deadline:    time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local),
	}
}

func TestGoalRepo_Create(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewGoalRepo(pool)

	created, err := repo.Create(context.Background(), sampleGoal("user-a"))
	if err != nil {
		t.Fatal(err)
	}

	if created.ID == "" {
		t.Error("expected non-empty ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set by the store")
	}
	if created.CurrentValue != 0 {
		t.Errorf("expected zero progress, got %f", created.CurrentValue)
	}
}

func TestGoalRepo_SetProgress_Unclamped(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewGoalRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleGoal("user-a"))
	if err != nil {
		t.Fatal(err)
	}

	// Values outside [0, target] are stored verbatim.
	for _, v := range []float64{5, 12, -3} {
		updated, err := repo.SetProgress(ctx, "user-a", created.ID, v)
		if err != nil {
			t.Fatal(err)
		}
		if updated.CurrentValue != v {
			t.Errorf("expected stored value %f, got %f", v, updated.CurrentValue)
		}

		fetched, err := repo.Get(ctx, "user-a", created.ID)
		if err != nil {
			t.Fatal(err)
		}
		if fetched.CurrentValue != v {
			t.Errorf("read back %f, want %f", fetched.CurrentValue, v)
		}
	}
}

func TestGoalRepo_OwnerScoping(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewGoalRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleGoal("user-a"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := repo.SetProgress(ctx, "user-b", created.ID, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetProgress: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "user-b", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}

	goals, err := repo.ListByOwner(ctx, "user-b")
	if err != nil {
		t.Fatal(err)
	}
	if len(goals) != 0 {
		t.Errorf("expected no goals for user-b, got %d", len(goals))
	}
}

func TestGoalRepo_Delete(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewGoalRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleGoal("user-a"))
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, "user-a", created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get(ctx, "user-a", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// Hard delete: a second attempt is indistinguishable from never existing.
	if err := repo.Delete(ctx, "user-a", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeat delete, got %v", err)
	}
}
