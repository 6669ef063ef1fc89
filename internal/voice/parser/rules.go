package parser

import (
	"regexp"

	"voice-task-parser/internal/model"
)

// keywordRule maps a pattern found anywhere in the text to a value.
type keywordRule[T any] struct {
	name  string
	re    *regexp.Regexp
	value T
}

// firstMatch returns the value of the first rule whose pattern occurs in text, or fallback.
func firstMatch[T any](rules []keywordRule[T], text string, fallback T) (T, string) {
	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.value, r.name
		}
	}
	return fallback, ""
}

// Order is precedence: "urgent low priority" is urgent.
var priorityRules = []keywordRule[model.Priority]{
	{name: "urgent", re: regexp.MustCompile(`(?i)urgent|critical|asap`), value: model.PriorityUrgent},
	{name: "high", re: regexp.MustCompile(`(?i)high priority|important|high`), value: model.PriorityHigh},
	{name: "low", re: regexp.MustCompile(`(?i)low priority|low`), value: model.PriorityLow},
}

var statusRules = []keywordRule[model.Status]{
	{name: "in_progress", re: regexp.MustCompile(`(?i)in progress|working on|started`), value: model.StatusInProgress},
	{name: "done", re: regexp.MustCompile(`(?i)done|completed|finished`), value: model.StatusDone},
}
