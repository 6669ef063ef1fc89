package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/usecase"
)

func strPtr(s string) *string { return &s }

func TestReview(t *testing.T) {
	uc := newUseCase(t, usecase.Config{TitleMaxLength: 20})

	tomorrow := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
	tomorrowDay := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	farFuture := time.Date(10500, 1, 1, 0, 0, 0, 0, time.UTC)
	draft := model.TaskDraft{
		Title:    "Review the PR",
		Priority: model.PriorityMedium,
		Status:   model.StatusTodo,
		DueDate:  &tomorrow,
	}
	inProgress := model.StatusInProgress
	urgent := model.PriorityUrgent
	badStatus := model.Status("blocked")
	badPriority := model.Priority("whenever")

	tests := []struct {
		name    string
		draft   model.TaskDraft
		edits   voice.Edits
		want    model.CreateTaskInput
		wantErr error
	}{
		{
			name:  "Draft due date reduced to its day",
			draft: draft,
			want: model.CreateTaskInput{
				Title: "Review the PR", Status: model.StatusTodo, Priority: model.PriorityMedium, DueDate: &tomorrowDay,
			},
		},
		{
			name:  "All fields edited",
			draft: draft,
			edits: voice.Edits{
				Title:    strPtr("  Merge the PR "),
				Status:   &inProgress,
				Priority: &urgent,
				DueDate:  strPtr("2024-05-10"),
			},
			want: model.CreateTaskInput{
				Title:    "Merge the PR",
				Status:   model.StatusInProgress,
				Priority: model.PriorityUrgent,
				DueDate:  ptrTime(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			name:  "Due date cleared",
			draft: draft,
			edits: voice.Edits{DueDate: strPtr("")},
			want: model.CreateTaskInput{
				Title: "Review the PR", Status: model.StatusTodo, Priority: model.PriorityMedium,
			},
		},
		{
			name:  "Due date today is allowed",
			draft: draft,
			edits: voice.Edits{DueDate: strPtr("2024-05-01")},
			want: model.CreateTaskInput{
				Title: "Review the PR", Status: model.StatusTodo, Priority: model.PriorityMedium,
				DueDate: ptrTime(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			name:    "Blank title",
			draft:   draft,
			edits:   voice.Edits{Title: strPtr("   ")},
			wantErr: voice.ErrInvalidTitle,
		},
		{
			name:    "Title too long",
			draft:   draft,
			edits:   voice.Edits{Title: strPtr(strings.Repeat("x", 21))},
			wantErr: voice.ErrInvalidTitle,
		},
		{
			name:    "Unknown status",
			draft:   draft,
			edits:   voice.Edits{Status: &badStatus},
			wantErr: voice.ErrInvalidStatus,
		},
		{
			name:    "Unknown priority",
			draft:   draft,
			edits:   voice.Edits{Priority: &badPriority},
			wantErr: voice.ErrInvalidPriority,
		},
		{
			name:    "Malformed due date",
			draft:   draft,
			edits:   voice.Edits{DueDate: strPtr("next week")},
			wantErr: voice.ErrInvalidDueDate,
		},
		{
			name:    "Due date beyond year 9999",
			draft:   model.TaskDraft{Title: "Ship it", Priority: model.PriorityMedium, Status: model.StatusTodo, DueDate: &farFuture},
			wantErr: voice.ErrInvalidDueDate,
		},
		{
			name:    "Parsed due date in the past",
			draft:   model.TaskDraft{Title: "Send invoice", Priority: model.PriorityLow, Status: model.StatusTodo, DueDate: &lastMonth},
			wantErr: voice.ErrDueDateInPast,
		},
		{
			name:    "Edited due date in the past",
			draft:   draft,
			edits:   voice.Edits{DueDate: strPtr("2024-04-30")},
			wantErr: voice.ErrDueDateInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Review(context.Background(), voice.ReviewInput{Draft: tt.draft, Edits: tt.edits, Now: baseTime})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Review() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			got := out.Task
			if got.Title != tt.want.Title || got.Status != tt.want.Status || got.Priority != tt.want.Priority {
				t.Errorf("Review() = %+v, want %+v", got, tt.want)
			}
			switch {
			case tt.want.DueDate == nil && got.DueDate != nil:
				t.Errorf("DueDate = %v, want nil", *got.DueDate)
			case tt.want.DueDate != nil && (got.DueDate == nil || !got.DueDate.Equal(*tt.want.DueDate)):
				t.Errorf("DueDate = %v, want %v", got.DueDate, *tt.want.DueDate)
			}
		})
	}
}

func TestReview_DoesNotAliasDraft(t *testing.T) {
	uc := newUseCase(t, usecase.Config{})
	due := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
	draft := model.TaskDraft{Title: "Pay rent", Priority: model.PriorityMedium, Status: model.StatusTodo, DueDate: &due}

	out, err := uc.Review(context.Background(), voice.ReviewInput{Draft: draft, Now: baseTime})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	*out.Task.DueDate = out.Task.DueDate.AddDate(0, 0, 3)

	if !draft.DueDate.Equal(time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)) {
		t.Errorf("draft due date changed to %v", *draft.DueDate)
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
