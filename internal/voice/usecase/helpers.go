package usecase

import (
	"time"

	"voice-task-parser/internal/model"
)

// cloneDraft copies the due date so cached drafts cannot be changed through a returned pointer.
func cloneDraft(d model.TaskDraft) model.TaskDraft {
	d.DueDate = cloneTime(d.DueDate)
	return d
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func ruleName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}
