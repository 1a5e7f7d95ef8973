package task

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

type Task struct {
	ID          string
	Title       string
	Description *string
	Deadline    *time.Time
	Priority    Priority
	Status      Status
	AssignedTo  string
	AssignedBy  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	AssigneeName  *string
	AssigneeEmail *string
}
