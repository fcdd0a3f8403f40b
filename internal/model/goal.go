package model

import "time"

// Goal categories accepted by the API.
var GoalCategories = []string{"fitness", "career", "personal", "learning", "financial"}

type Goal struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TargetValue  float64   `json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	Unit         string    `json:"unit"`
	Category     string    `json:"category"`
	Deadline     time.Time `json:"deadline"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsCompleted reports whether the goal reached its target.
// Completion is derived, never stored.
func (g Goal) IsCompleted() bool {
	return g.CurrentValue >= g.TargetValue
}

// GoalUpdate carries a partial update; nil fields are left untouched.
type GoalUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	TargetValue  *float64   `json:"targetValue"`
	CurrentValue *float64   `json:"currentValue"`
	Unit         *string    `json:"unit"`
	Category     *string    `json:"category"`
	Deadline     *time.Time `json:"deadline"`
}

// ProgressUpdate is the body of PUT /goals/progress/{id}.
type ProgressUpdate struct {
	CurrentValue float64 `json:"currentValue"`
}
