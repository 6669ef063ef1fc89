package datemath

import "time"

// DateFormat is the calendar date layout accepted by ParseDate.
const DateFormat = "2006-01-02"

// Rule names reported in ParseResult.
const (
	RuleToday    = "today"
	RuleTomorrow = "tomorrow"
	RuleInDays   = "in_days"
	RuleInWeeks  = "in_weeks"
	RuleInMonths = "in_months"
	RuleWeekday  = "weekday"
	RuleMonthDay = "month_day"
)

// ParseResult holds the result of extracting a due date from text.
type ParseResult struct {
	AbsoluteTime time.Time
	Rule         string
	Found        bool
}
