package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// rule resolves a due date from lower-cased text, reporting false when it does not apply.
type rule struct {
	name    string
	resolve func(text string, now time.Time) (time.Time, bool)
}

// timeOfDay sets the hour when any of its keywords appears in the text.
type timeOfDay struct {
	keywords []string
	hour     int
}

const (
	endOfDayHour = 17

	// maxDurationCount bounds "in <N> <unit>"; any larger count lands past maxYear for every unit.
	maxDurationCount = 10000 * 366
	maxYear          = 9999
)

var (
	todayPattern    = regexp.MustCompile(`\btoday\b`)
	tomorrowPattern = regexp.MustCompile(`\btomorrow\b`)
	inDaysPattern   = regexp.MustCompile(`in (\d+) days?`)
	inWeeksPattern  = regexp.MustCompile(`in (\d+) weeks?`)
	inMonthsPattern = regexp.MustCompile(`in (\d+) months?`)
	weekdayPattern  = regexp.MustCompile(`\b(next|this)?\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	monthDayPatterns = compileMonthDayPatterns()

	todayHours = []timeOfDay{
		{keywords: []string{"evening", "tonight"}, hour: 18},
		{keywords: []string{"morning"}, hour: 9},
		{keywords: []string{"afternoon"}, hour: 14},
	}
	tomorrowHours = []timeOfDay{
		{keywords: []string{"evening"}, hour: 18},
		{keywords: []string{"morning"}, hour: 9},
		{keywords: []string{"afternoon"}, hour: 14},
	}

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	monthNames = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
)

func defaultRules() []rule {
	return []rule{
		{name: RuleToday, resolve: resolveToday},
		{name: RuleTomorrow, resolve: resolveTomorrow},
		{name: RuleInDays, resolve: inDuration(inDaysPattern, func(now time.Time, n int) time.Time {
			return now.AddDate(0, 0, n)
		})},
		{name: RuleInWeeks, resolve: inDuration(inWeeksPattern, func(now time.Time, n int) time.Time {
			return now.AddDate(0, 0, n*7)
		})},
		{name: RuleInMonths, resolve: inDuration(inMonthsPattern, addMonths)},
		{name: RuleWeekday, resolve: resolveWeekday},
		{name: RuleMonthDay, resolve: resolveMonthDay},
	}
}

func compileMonthDayPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(monthNames))
	for i, name := range monthNames {
		patterns[i] = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+` + name)
	}
	return patterns
}

func resolveToday(text string, now time.Time) (time.Time, bool) {
	if !todayPattern.MatchString(text) {
		return time.Time{}, false
	}
	return atHour(now, hourFor(text, todayHours)), true
}

func resolveTomorrow(text string, now time.Time) (time.Time, bool) {
	if !tomorrowPattern.MatchString(text) {
		return time.Time{}, false
	}
	return atHour(now.AddDate(0, 0, 1), hourFor(text, tomorrowHours)), true
}

// inDuration builds a rule for "in <N> <unit>" phrases.
// A count that does not fit an int, or a result past year 9999, leaves the rule unmatched.
func inDuration(re *regexp.Regexp, advance func(now time.Time, n int) time.Time) func(string, time.Time) (time.Time, bool) {
	return func(text string, now time.Time) (time.Time, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxDurationCount {
			return time.Time{}, false
		}
		due := advance(now, n)
		if due.Year() > maxYear {
			return time.Time{}, false
		}
		return due, true
	}
}

// resolveWeekday handles "monday", "this friday" and "next sunday".
// A target on or before today always rolls into next week; "next" always adds a week.
func resolveWeekday(text string, now time.Time) (time.Time, bool) {
	m := weekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	daysToAdd := int(weekdays[m[2]] - now.Weekday())
	if daysToAdd <= 0 || m[1] == "next" {
		daysToAdd += 7
	}
	return now.AddDate(0, 0, daysToAdd), true
}

// resolveMonthDay handles "21st march" style dates in the reference year.
// Months are checked in calendar order, not by position in the text.
func resolveMonthDay(text string, now time.Time) (time.Time, bool) {
	for i, re := range monthDayPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return time.Date(now.Year(), time.Month(i+1), day, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

func hourFor(text string, hours []timeOfDay) int {
	for _, h := range hours {
		for _, kw := range h.keywords {
			if strings.Contains(text, kw) {
				return h.hour
			}
		}
	}
	return endOfDayHour
}

func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// addMonths advances t by n calendar months, clamping the day to the target month's length.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
