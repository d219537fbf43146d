// internal/models/task.go
package models

import "time"

// TaskStatus is the board lane a task currently occupies.
type TaskStatus string

const (
	StatusTodo         TaskStatus = "TODO"
	StatusInProgress   TaskStatus = "IN_PROGRESS"
	StatusClientReview TaskStatus = "CLIENT_REVIEW"
	StatusDone         TaskStatus = "DONE"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Comment is a single remark attached to exactly one task.
// Immutable once created; owned by its parent task.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsClient  bool      `json:"is_client"`
}

// Task is a unit of trackable work on the issue board.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Assignee    string       `json:"assignee"`
	ClientName  string       `json:"client_name"`
	DueDate     time.Time    `json:"due_date"`
	Comments    []Comment    `json:"comments"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskFilter defines the available parameters for filtering tasks.
type TaskFilter struct {
	Status *TaskStatus
	Query  string // case-insensitive substring on title or client name
}

// BoardLane is one status column with its tasks and the derived count.
type BoardLane struct {
	Status TaskStatus `json:"status"`
	Label  string     `json:"label"`
	Count  int        `json:"count"`
	Tasks  []Task     `json:"tasks"`
}
