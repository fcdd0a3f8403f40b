package model

import "time"

// Task categories and priorities accepted by the API.
var (
	TaskCategories = []string{"work", "personal", "health", "learning"}
	TaskPriorities = []string{"low", "medium", "high"}
)

type Task struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Date        time.Time `json:"date"`
	Completed   bool      `json:"completed"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
	Date        *time.Time `json:"date"`
	Completed   *bool      `json:"completed"`
}
