package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
)

const maxDueYear = 9999

// Review applies the user's edits over the draft and validates the task-creation payload.
func (uc *implUseCase) Review(ctx context.Context, input voice.ReviewInput) (voice.ReviewOutput, error) {
	task, err := uc.applyEdits(input)
	if err != nil {
		uc.l.Warnf(ctx, "voice.usecase.Review applyEdits: %v", err)
		return voice.ReviewOutput{}, err
	}

	if err := uc.validateTask(task); err != nil {
		uc.l.Warnf(ctx, "voice.usecase.Review validateTask: %v", err)
		return voice.ReviewOutput{}, err
	}

	if task.DueDate != nil && task.DueDate.Before(uc.dateMath.StartOfDay(input.Now)) {
		return voice.ReviewOutput{}, voice.ErrDueDateInPast
	}

	return voice.ReviewOutput{Task: task}, nil
}

func (uc *implUseCase) applyEdits(input voice.ReviewInput) (model.CreateTaskInput, error) {
	task := model.CreateTaskInput{
		Title:    input.Draft.Title,
		Status:   input.Draft.Status,
		Priority: input.Draft.Priority,
		DueDate:  cloneTime(input.Draft.DueDate),
	}

	e := input.Edits
	if e.Title != nil {
		task.Title = *e.Title
	}
	task.Title = strings.TrimSpace(task.Title)

	if e.Status != nil {
		task.Status = *e.Status
	}
	if e.Priority != nil {
		task.Priority = *e.Priority
	}

	if e.DueDate != nil {
		if strings.TrimSpace(*e.DueDate) == "" {
			task.DueDate = nil
		} else {
			due, err := uc.dateMath.ParseDate(*e.DueDate, input.Now)
			if err != nil {
				return model.CreateTaskInput{}, fmt.Errorf("%w: %v", voice.ErrInvalidDueDate, err)
			}
			task.DueDate = &due
		}
	}

	// The task store keeps calendar days only.
	if task.DueDate != nil {
		if y := task.DueDate.Year(); y < 0 || y > maxDueYear {
			return model.CreateTaskInput{}, fmt.Errorf("%w: year %d out of range", voice.ErrInvalidDueDate, y)
		}
		day := uc.dateMath.StartOfDay(*task.DueDate)
		task.DueDate = &day
	}

	return task, nil
}
