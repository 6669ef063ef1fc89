package voice

import (
	"time"

	"voice-task-parser/internal/model"
)

// ParseInput is the input for single transcript parsing.
type ParseInput struct {
	Transcript string
	Now        time.Time // Reference time for relative due dates
}

// ParseOutput is the result of parsing one transcript.
type ParseOutput struct {
	Transcript string
	Draft      model.TaskDraft
}

// ParseBatchInput is the input for parsing many transcripts at once.
type ParseBatchInput struct {
	Transcripts []string
	Now         time.Time
}

// ParseBatchOutput holds one result per non-blank transcript, in input order.
type ParseBatchOutput struct {
	Results []ParseOutput
	Count   int
}

// Edits are the optional changes made to a draft during review. Nil fields keep the draft value.
type Edits struct {
	Title    *string
	Status   *model.Status
	Priority *model.Priority
	DueDate  *string // YYYY-MM-DD; empty string clears the due date
}

// ReviewInput is the input for the review step.
type ReviewInput struct {
	Draft model.TaskDraft
	Edits Edits
	Now   time.Time // Due dates before the start of this day are rejected
}

// ReviewOutput is the validated payload ready for task creation.
type ReviewOutput struct {
	Task model.CreateTaskInput
}
