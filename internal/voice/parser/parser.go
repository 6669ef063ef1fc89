// Package parser turns a voice transcript into a task draft using ordered keyword rules.
package parser

import (
	"strings"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/pkg/datemath"
)

// Parser extracts a task draft from a transcript. It is safe for concurrent use.
type Parser struct {
	dates *datemath.Parser
}

// Analysis is a parsed draft together with the name of the rule that produced each field.
// A rule name is empty when the field fell back to its default.
type Analysis struct {
	Draft        model.TaskDraft
	TitleRule    string
	PriorityRule string
	StatusRule   string
	DueDateRule  string
}

var defaultParser = New(nil)

// New creates a Parser. A nil dates parser keeps due dates in the reference time's location.
func New(dates *datemath.Parser) *Parser {
	if dates == nil {
		dates, _ = datemath.NewParser("")
	}
	return &Parser{dates: dates}
}

// Parse parses transcript with a parser that keeps now's location.
func Parse(transcript string, now time.Time) model.TaskDraft {
	return defaultParser.Parse(transcript, now)
}

// Parse builds a draft from transcript. It never fails: anything it cannot
// make sense of falls back to the default title, priority and status.
func (p *Parser) Parse(transcript string, now time.Time) model.TaskDraft {
	return p.Analyze(transcript, now).Draft
}

// Analyze runs the four extractions independently over transcript.
func (p *Parser) Analyze(transcript string, now time.Time) Analysis {
	lower := strings.ToLower(transcript)

	title, titleRule := extractTitle(transcript)
	priority, priorityRule := firstMatch(priorityRules, lower, model.DefaultPriority)
	status, statusRule := firstMatch(statusRules, lower, model.DefaultStatus)

	a := Analysis{
		Draft: model.TaskDraft{
			Title:    title,
			Priority: priority,
			Status:   status,
		},
		TitleRule:    titleRule,
		PriorityRule: priorityRule,
		StatusRule:   statusRule,
	}

	if res := p.dates.ExtractResult(lower, now); res.Found {
		due := res.AbsoluteTime
		a.Draft.DueDate = &due
		a.DueDateRule = res.Rule
	}

	return a
}
