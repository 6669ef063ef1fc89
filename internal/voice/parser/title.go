package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"voice-task-parser/internal/model"
)

// Rule names reported for the title in Analysis.
const (
	TitleRuleCreate   = "create"
	TitleRuleRemindMe = "remind_me"
	TitleRuleNeedTo   = "need_to"
	TitleRuleFallback = "fallback"
)

// titleStop ends a title capture at a date or priority word, or at the end of the text.
const titleStop = `(?:\s+by\s+|\s+due\s+|\s+priority|\s+urgent|\s+high|\s+medium|\s+low|$)`

type titlePattern struct {
	name string
	re   *regexp.Regexp
}

// Tried in order; the first template that yields a non-empty title wins.
var titlePatterns = []titlePattern{
	{
		name: TitleRuleCreate,
		re:   regexp.MustCompile(`(?i)(?:create|add|make|new)\s+(?:a\s+)?(?:task\s+)?(?:to\s+)?(.+?)` + titleStop),
	},
	{
		name: TitleRuleRemindMe,
		re:   regexp.MustCompile(`(?i)(?:remind\s+me\s+to\s+)(.+?)` + titleStop),
	},
	{
		name: TitleRuleNeedTo,
		re:   regexp.MustCompile(`(?i)(?:need\s+to\s+|have\s+to\s+|should\s+)(.+?)` + titleStop),
	},
}

var (
	priorityClausePattern   = regexp.MustCompile(`(?i)\s+(?:it'?s|that'?s)\s+(?:high|low|medium|urgent)\s+priority`)
	trailingPriorityPattern = regexp.MustCompile(`(?i)\s+priority$`)
	taskPrefixPattern       = regexp.MustCompile(`(?i)^(?:task\s+to\s+|task\s+)`)

	leadInPattern         = regexp.MustCompile(`(?i)^(?:create|add|make|new)\s+(?:a\s+)?(?:task\s+)?(?:to\s+)?`)
	priorityPhrasePattern = regexp.MustCompile(`(?i)\s+(?:high|low|medium|urgent)\s+priority`)
	byDayClausePattern    = regexp.MustCompile(`(?i)\s+by\s+(?:tomorrow|today|tonight|monday|tuesday|wednesday|thursday|friday|saturday|sunday).*`)
)

// extractTitle matches against the original transcript so the title keeps its casing.
func extractTitle(original string) (string, string) {
	for _, p := range titlePatterns {
		m := p.re.FindStringSubmatch(original)
		if m == nil {
			continue
		}
		if title := cleanCapture(m[1]); title != "" {
			return capitalize(title), p.name
		}
	}

	cleaned := leadInPattern.ReplaceAllString(original, "")
	cleaned = priorityPhrasePattern.ReplaceAllString(cleaned, "")
	cleaned = byDayClausePattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return model.DefaultTitle, ""
	}
	return capitalize(cleaned), TitleRuleFallback
}

func cleanCapture(title string) string {
	title = strings.TrimSpace(title)
	title = priorityClausePattern.ReplaceAllString(title, "")
	title = trailingPriorityPattern.ReplaceAllString(title, "")
	title = taskPrefixPattern.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
