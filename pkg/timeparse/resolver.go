// Package timeparse resolves event time expressions into instants.
package timeparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"leaguebot/internal/domain"
	"leaguebot/pkg/tz"
)

// StrictLayout is the exact date/time form, interpreted in the event zone.
const StrictLayout = "2006-01-02 15:04"

var (
	strictShape  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{1,2}:\d{2}$`)
	explicitYear = regexp.MustCompile(`\b\d{4}\b`)
	monthDay     = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b|\b\d{1,2}/\d{1,2}\b`)
	weekday      = regexp.MustCompile(`\b(mon|tue|wed|thu|fri|sat|sun)[a-z]*\b`)
)

// Resolver turns presets, strict timestamps and free text into instants.
type Resolver struct {
	parser *when.Parser
}

func NewResolver() *Resolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Resolver{parser: w}
}

// Resolve interprets expr in zone relative to ref. It tries presets, then
// StrictLayout, then free-text extraction, and returns domain.ErrUnparseable
// when none match. It does not check that the result lies in the future.
func (r *Resolver) Resolve(expr, zone string, ref time.Time) (time.Time, error) {
	loc, err := tz.Load(zone)
	if err != nil {
		return time.Time{}, err
	}
	expr = strings.TrimSpace(expr)
	local := ref.In(loc)

	if t, ok := presetTime(strings.ToLower(expr), local); ok {
		return t, nil
	}
	if t, err := time.ParseInLocation(StrictLayout, expr, loc); err == nil {
		return t, nil
	}
	// Out-of-range values in the strict form are a typo, not free text.
	if strictShape.MatchString(expr) {
		return time.Time{}, fmt.Errorf("resolve %q: %w", expr, domain.ErrUnparseable)
	}
	if expr == "" {
		return time.Time{}, fmt.Errorf("resolve %q: %w", expr, domain.ErrUnparseable)
	}

	res, err := r.parser.Parse(expr, local)
	if err != nil || res == nil {
		return time.Time{}, fmt.Errorf("resolve %q: %w", expr, domain.ErrUnparseable)
	}
	return forward(strings.ToLower(expr), res.Time.In(loc), local), nil
}

// forward moves a free-text match that lies before ref to its next
// occurrence: a month/day to next year, a weekday to next week and a time of
// day to tomorrow. Texts naming a year or "today" are taken literally.
func forward(text string, t, ref time.Time) time.Time {
	if !t.Before(ref) || explicitYear.MatchString(text) || strings.Contains(text, "today") {
		return t
	}
	years, days := 0, 0
	switch {
	case monthDay.MatchString(text):
		years = 1
	case weekday.MatchString(text):
		days = 7
	case sameDay(t, ref):
		days = 1
	default:
		return t
	}
	for t.Before(ref) {
		t = t.AddDate(years, 0, days)
	}
	return t
}

// ValidateFuture returns domain.ErrPastTime unless t is strictly after now.
func ValidateFuture(t, now time.Time) error {
	if !t.After(now) {
		return domain.ErrPastTime
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
