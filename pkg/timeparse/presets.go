package timeparse

import (
	"time"

	"github.com/jinzhu/now"
)

// Preset keywords accepted by Resolve and offered in the time menu.
const (
	PresetIn30Minutes = "in 30 minutes"
	PresetIn1Hour     = "in 1 hour"
	PresetIn2Hours    = "in 2 hours"
	PresetIn4Hours    = "in 4 hours"
	PresetTonight     = "tonight"
	PresetTomorrow    = "tomorrow"
	PresetWeekend     = "this weekend"
	PresetNextMonday  = "next monday"
	PresetNextMonth   = "next month"
	PresetInAWeek     = "in a week"

	// PresetCustom is a menu-only entry that opens the free-text form.
	PresetCustom = "custom"
)

// Preset is a time menu entry.
type Preset struct {
	Label string
	Value string
}

// Presets lists the time menu in display order.
var Presets = []Preset{
	{Label: "In 30 minutes", Value: PresetIn30Minutes},
	{Label: "In 1 hour", Value: PresetIn1Hour},
	{Label: "In 2 hours", Value: PresetIn2Hours},
	{Label: "In 4 hours", Value: PresetIn4Hours},
	{Label: "Tonight (19:00)", Value: PresetTonight},
	{Label: "Tomorrow (18:00)", Value: PresetTomorrow},
	{Label: "This weekend (Saturday 18:00)", Value: PresetWeekend},
	{Label: "Next Monday (18:00)", Value: PresetNextMonday},
	{Label: "Next month (1st, 18:00)", Value: PresetNextMonth},
	{Label: "In a week", Value: PresetInAWeek},
	{Label: "Custom date/time...", Value: PresetCustom},
}

// IsPreset reports whether expr is a resolvable preset keyword.
func IsPreset(expr string) bool {
	if expr == PresetCustom {
		return false
	}
	for _, p := range Presets {
		if p.Value == expr {
			return true
		}
	}
	return false
}

// presetTime computes a preset relative to ref, which must already be in the
// target location. ok is false when expr is not a preset.
func presetTime(expr string, ref time.Time) (t time.Time, ok bool) {
	switch expr {
	case PresetIn30Minutes:
		return ref.Add(30 * time.Minute), true
	case PresetIn1Hour:
		return ref.Add(time.Hour), true
	case PresetIn2Hours:
		return ref.Add(2 * time.Hour), true
	case PresetIn4Hours:
		return ref.Add(4 * time.Hour), true
	case PresetTonight:
		tonight := atHour(ref, 0, 19)
		if tonight.Before(ref) {
			tonight = atHour(ref, 1, 19)
		}
		return tonight, true
	case PresetTomorrow:
		return atHour(ref, 1, 18), true
	case PresetWeekend:
		return atHour(ref, daysUntil(ref, time.Saturday), 18), true
	case PresetNextMonday:
		return atHour(ref, daysUntil(ref, time.Monday), 18), true
	case PresetNextMonth:
		first := now.With(ref).BeginningOfMonth().AddDate(0, 1, 0)
		return time.Date(first.Year(), first.Month(), 1, 18, 0, 0, 0, ref.Location()), true
	case PresetInAWeek:
		return ref.AddDate(0, 0, 7), true
	}
	return time.Time{}, false
}

// atHour returns the wall-clock hour:00 of the day offset days after ref.
func atHour(ref time.Time, days, hour int) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day()+days, hour, 0, 0, 0, ref.Location())
}

// daysUntil counts days to the next target weekday. On the target day itself
// it is 0 before 18:00 and 7 afterwards.
func daysUntil(ref time.Time, target time.Weekday) int {
	days := (int(target) - int(ref.Weekday()) + 7) % 7
	if days == 0 && ref.Hour() >= 18 {
		days = 7
	}
	return days
}
