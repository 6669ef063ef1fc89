package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser finds due dates in free-form text, relative to a reference time.
type Parser struct {
	location *time.Location
	rules    []rule
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh". An empty timezone keeps the location of each reference time.
func NewParser(timezone string) (*Parser, error) {
	p := &Parser{rules: defaultRules()}
	if timezone == "" {
		return p, nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	p.location = loc
	return p, nil
}

// Extract returns the due date described in text, evaluated against now.
func (p *Parser) Extract(text string, now time.Time) (time.Time, bool) {
	res := p.ExtractResult(text, now)
	return res.AbsoluteTime, res.Found
}

// ExtractResult is Extract with the matching rule reported alongside the date.
// Rules are tried in precedence order and the first one that matches wins.
func (p *Parser) ExtractResult(text string, now time.Time) ParseResult {
	text = strings.ToLower(text)
	now = p.in(now)

	for _, r := range p.rules {
		if t, ok := r.resolve(text, now); ok {
			return ParseResult{AbsoluteTime: t, Rule: r.name, Found: true}
		}
	}
	return ParseResult{}
}

// ParseDate parses a calendar date in DateFormat as midnight in the parser's timezone
// (or ref's location when the parser has none).
func (p *Parser) ParseDate(value string, ref time.Time) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(value), p.in(ref).Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = p.in(t)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Location returns the configured timezone, nil when reference times keep their own.
func (p *Parser) Location() *time.Location {
	return p.location
}

func (p *Parser) in(t time.Time) time.Time {
	if p.location == nil {
		return t
	}
	return t.In(p.location)
}
