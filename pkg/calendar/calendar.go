// Package calendar builds "add to calendar" links for posted events.
package calendar

import (
	"net/url"
	"time"
)

const (
	renderURL   = "https://www.google.com/calendar/render"
	stampLayout = "20060102T150405Z"
)

// Link returns a calendar template URL for an event running from start to end.
func Link(title, details string, start, end time.Time) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	q.Set("details", details)
	q.Set("dates", Stamp(start)+"/"+Stamp(end))
	return renderURL + "?" + q.Encode()
}

// Stamp formats t in UTC basic format.
func Stamp(t time.Time) string {
	return t.UTC().Format(stampLayout)
}
