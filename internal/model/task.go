package model

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"

	DefaultPriority = PriorityMedium
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Status is the board column a task sits in.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"

	DefaultStatus = StatusTodo
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// DefaultTitle is used when nothing usable can be taken from a transcript.
const DefaultTitle = "New Task"

// TaskDraft is a task parsed from a voice transcript, pending human review.
// Title, Priority and Status are always set; DueDate is nil when no date was heard.
type TaskDraft struct {
	Title    string     `json:"title"`
	Priority Priority   `json:"priority"`
	Status   Status     `json:"status"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
}

// CreateTaskInput is the payload handed to task creation once a draft has been reviewed.
type CreateTaskInput struct {
	Title    string     `json:"title"`
	Status   Status     `json:"status"`
	Priority Priority   `json:"priority"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
}
