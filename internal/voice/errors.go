package voice

import "errors"

// Domain-specific errors for the voice package.
var (
	ErrEmptyBatch      = errors.New("no transcripts to parse")
	ErrInvalidTitle    = errors.New("invalid task title")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrDueDateInPast   = errors.New("due date cannot be in the past")
)
