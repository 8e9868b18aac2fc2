// Package dates resolves loosely-formatted closing-date strings.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	gocache "github.com/patrickmn/go-cache"
)

// Candidate substrings pulled out of text that fails to parse whole.
// Numeric forms first, then day-month-name and month-name-day forms.
var candidateRes = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,4}[./-]\d{1,2}[./-]\d{1,4}`),
	regexp.MustCompile(`(?i)\d{1,2}(?:st|nd|rd|th)?\s+[a-z]{3,9}\.?,?\s+\d{4}`),
	regexp.MustCompile(`(?i)[a-z]{3,9}\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}`),
}

var ordinalRe = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)\b`)

type resolved struct {
	date time.Time
	ok   bool
}

// Resolver parses closing-date strings with day-first disambiguation and a
// fuzzy fallback that ignores surrounding non-date tokens. Parse failures
// are a normal outcome, never an error. Results are memoized: the same
// closing-date strings repeat across postings and runs.
type Resolver struct {
	cache *gocache.Cache
}

func NewResolver() *Resolver {
	return &Resolver{cache: gocache.New(30*time.Minute, time.Hour)}
}

// Resolve returns the calendar date found in value, truncated to midnight
// UTC. The second result is false when no date can be recovered.
func (r *Resolver) Resolve(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if cached, found := r.cache.Get(value); found {
		res := cached.(resolved)
		return res.date, res.ok
	}

	date, ok := parse(value)
	r.cache.Set(value, resolved{date: date, ok: ok}, gocache.DefaultExpiration)
	return date, ok
}

func parse(value string) (time.Time, bool) {
	if t, err := parseDayFirst(value); err == nil {
		return truncate(t), true
	}
	for _, re := range candidateRes {
		for _, candidate := range re.FindAllString(value, -1) {
			if t, err := parseDayFirst(candidate); err == nil {
				return truncate(t), true
			}
		}
	}
	return time.Time{}, false
}

func parseDayFirst(value string) (time.Time, error) {
	value = ordinalRe.ReplaceAllString(value, "$1")
	return dateparse.ParseAny(value, dateparse.PreferMonthFirst(false))
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
