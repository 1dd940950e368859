package models

import (
	"time"
)

type User struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"user_name"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type TodoList struct {
	ID     string `json:"list_id"`
	UserID string `json:"user_id"`
	Name   string `json:"list_name"`
	Tasks  []Task `json:"tasks,omitempty"` // For dashboard view
}

type Task struct {
	ID          string `json:"task_id"`
	ListID      string `json:"list_id"`
	Description string `json:"task_description"`
	IsCompleted bool   `json:"is_completed"`
}

type Stash struct {
	ID        string    `json:"url_id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	Summary   string    `json:"summary"`
	Tags      string    `json:"tags"` // Comma-separated, stored opaque
	CreatedAt time.Time `json:"created_at,omitempty"`
}
