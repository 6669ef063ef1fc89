package parser_test

import (
	"reflect"
	"testing"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice/parser"
	"voice-task-parser/pkg/datemath"
)

// Wednesday, May 1, 2024
var baseTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newParser(t *testing.T) *parser.Parser {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return parser.New(dates)
}

func TestParse_Defaults(t *testing.T) {
	got := newParser(t).Parse("", baseTime)
	want := model.TaskDraft{
		Title:    "New Task",
		Priority: model.PriorityMedium,
		Status:   model.StatusTodo,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"\") = %+v, want %+v", got, want)
	}
}

func TestParse(t *testing.T) {
	p := newParser(t)
	tomorrow5pm := time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC)
	nextWednesday := baseTime.AddDate(0, 0, 7)

	tests := []struct {
		name         string
		transcript   string
		wantTitle    string
		wantPriority model.Priority
		wantStatus   model.Status
		wantDue      *time.Time
	}{
		{
			name:         "Create pattern with tomorrow",
			transcript:   "Create a task to review the pull request by tomorrow",
			wantTitle:    "Review the pull request",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusTodo,
			wantDue:      &tomorrow5pm,
		},
		{
			name:         "Remind me with next weekday",
			transcript:   "remind me to call mom next wednesday",
			wantTitle:    "Call mom next wednesday",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusTodo,
			wantDue:      &nextWednesday,
		},
		{
			name:         "Status keyword falls back to full transcript",
			transcript:   "I'm working on the quarterly report",
			wantTitle:    "I'm working on the quarterly report",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusInProgress,
		},
		{
			name:         "Urgent beats low",
			transcript:   "urgent low priority task",
			wantTitle:    "Urgent task",
			wantPriority: model.PriorityUrgent,
			wantStatus:   model.StatusTodo,
		},
		{
			name:         "Create pattern stops at priority word",
			transcript:   "add buy groceries high priority",
			wantTitle:    "Buy groceries",
			wantPriority: model.PriorityHigh,
			wantStatus:   model.StatusTodo,
		},
		{
			name:         "Need to pattern",
			transcript:   "I need to finish the slides due friday",
			wantTitle:    "Finish the slides",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusTodo,
			wantDue:      ptr(time.Date(2024, 5, 3, 15, 30, 0, 0, time.UTC)),
		},
		{
			name:         "Done status",
			transcript:   "should file taxes, already completed",
			wantTitle:    "File taxes, already completed",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusDone,
		},
		{
			name:         "Original casing kept",
			transcript:   "create task to email ACME Corp",
			wantTitle:    "Email ACME Corp",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusTodo,
		},
		{
			name:         "Fallback strips by-day clause",
			transcript:   "pay rent by monday",
			wantTitle:    "Pay rent",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusTodo,
			wantDue:      ptr(time.Date(2024, 5, 6, 15, 30, 0, 0, time.UTC)),
		},
		{
			name:         "In weeks with important",
			transcript:   "important: renew passport in 2 weeks",
			wantTitle:    "Passport in 2 weeks",
			wantPriority: model.PriorityHigh,
			wantStatus:   model.StatusTodo,
			wantDue:      ptr(time.Date(2024, 5, 15, 15, 30, 0, 0, time.UTC)),
		},
		{
			name:         "Month day in the past is kept",
			transcript:   "remind me to send the invoice on 21st march",
			wantTitle:    "Send the invoice on 21st march",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusTodo,
			wantDue:      ptr(time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:         "Whitespace only",
			transcript:   "   ",
			wantTitle:    "New Task",
			wantPriority: model.PriorityMedium,
			wantStatus:   model.StatusTodo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.transcript, baseTime)

			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Priority != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", got.Priority, tt.wantPriority)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			switch {
			case tt.wantDue == nil && got.DueDate != nil:
				t.Errorf("DueDate = %v, want nil", *got.DueDate)
			case tt.wantDue != nil && got.DueDate == nil:
				t.Errorf("DueDate = nil, want %v", *tt.wantDue)
			case tt.wantDue != nil && !got.DueDate.Equal(*tt.wantDue):
				t.Errorf("DueDate = %v, want %v", *got.DueDate, *tt.wantDue)
			}
		})
	}
}

func TestParse_Totality(t *testing.T) {
	p := newParser(t)
	inputs := []string{
		"",
		" ",
		"create",
		"create a  ",
		"add task",
		"remind me to ",
		"should priority",
		"new task to it's high priority",
		"!!!",
		"\n\t",
		"日本語のタスク",
		"make a task to ñandú high",
		"in 99999999999999999999 months",
		"31st february next sunday today",
		string([]byte{0xff, 0xfe, 'x'}),
	}

	for _, in := range inputs {
		got := p.Parse(in, baseTime)
		if got.Title == "" {
			t.Errorf("Parse(%q) returned empty title", in)
		}
		if !got.Priority.IsValid() {
			t.Errorf("Parse(%q) returned invalid priority %q", in, got.Priority)
		}
		if !got.Status.IsValid() {
			t.Errorf("Parse(%q) returned invalid status %q", in, got.Status)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	p := newParser(t)
	transcripts := []string{
		"Create a task to review the pull request by tomorrow",
		"remind me to call mom next wednesday",
		"need to water plants in 3 days urgent",
		"",
	}

	for _, s := range transcripts {
		first := p.Parse(s, baseTime)
		second := p.Parse(s, baseTime)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Parse(%q) not deterministic: %+v vs %+v", s, first, second)
		}
	}
}

func TestParse_PackageLevel(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, loc)

	got := parser.Parse("new task to buy milk today morning", now)
	if got.Title != "Buy milk today morning" {
		t.Errorf("Title = %q", got.Title)
	}
	want := time.Date(2024, 5, 1, 9, 0, 0, 0, loc)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, want)
	}
}

func TestAnalyze(t *testing.T) {
	a := newParser(t).Analyze("Create a task to review the pull request by tomorrow, it is urgent", baseTime)

	if a.TitleRule != parser.TitleRuleCreate {
		t.Errorf("TitleRule = %q", a.TitleRule)
	}
	if a.PriorityRule != "urgent" {
		t.Errorf("PriorityRule = %q", a.PriorityRule)
	}
	if a.StatusRule != "" {
		t.Errorf("StatusRule = %q, want default", a.StatusRule)
	}
	if a.DueDateRule != datemath.RuleTomorrow {
		t.Errorf("DueDateRule = %q", a.DueDateRule)
	}
}

func ptr(t time.Time) *time.Time { return &t }
