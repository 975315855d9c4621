// Package tz holds the fixed catalog of timezones offered to users.
package tz

import (
	"fmt"
	"time"

	"leaguebot/internal/domain"
)

// Default is the zone used when neither the command nor the guild names one.
const Default = "UTC"

// Zone is a catalog entry.
type Zone struct {
	Name  string
	Value string
}

// Option is a rendered menu entry.
type Option struct {
	Label string
	Value string
}

// Catalog lists the accepted zones in menu order.
var Catalog = []Zone{
	{Name: "UTC", Value: "UTC"},
	{Name: "London (UK)", Value: "Europe/London"},
	{Name: "Budapest (Hungary, GMT+1/+2)", Value: "Europe/Budapest"},
	{Name: "Berlin (Germany)", Value: "Europe/Berlin"},
	{Name: "Athens (Greece)", Value: "Europe/Athens"},
	{Name: "Moscow (Russia)", Value: "Europe/Moscow"},
	{Name: "Dubai (UAE)", Value: "Asia/Dubai"},
	{Name: "New Delhi (India)", Value: "Asia/Kolkata"},
	{Name: "Bangkok (Thailand)", Value: "Asia/Bangkok"},
	{Name: "Singapore", Value: "Asia/Singapore"},
	{Name: "Tokyo (Japan)", Value: "Asia/Tokyo"},
	{Name: "Sydney (Australia)", Value: "Australia/Sydney"},
	{Name: "Sao Paulo (Brazil)", Value: "America/Sao_Paulo"},
	{Name: "Santiago (Chile)", Value: "America/Santiago"},
	{Name: "New York (USA)", Value: "America/New_York"},
	{Name: "Chicago (USA)", Value: "America/Chicago"},
	{Name: "Denver (USA)", Value: "America/Denver"},
	{Name: "Los Angeles (USA)", Value: "America/Los_Angeles"},
	{Name: "Honolulu (USA)", Value: "Pacific/Honolulu"},
	{Name: "Auckland (New Zealand)", Value: "Pacific/Auckland"},
	{Name: "Anchorage (Alaska, USA)", Value: "America/Anchorage"},
	{Name: "Azores (Portugal)", Value: "Atlantic/Azores"},
	{Name: "Karachi (Pakistan)", Value: "Asia/Karachi"},
	{Name: "Cape Town (South Africa)", Value: "Africa/Johannesburg"},
}

// IsKnown reports whether zone is in the catalog.
func IsKnown(zone string) bool {
	for _, z := range Catalog {
		if z.Value == zone {
			return true
		}
	}
	return false
}

// Load returns the location of a catalog zone.
func Load(zone string) (*time.Location, error) {
	if !IsKnown(zone) {
		return nil, fmt.Errorf("tz: %q: %w", zone, domain.ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("tz: load %q: %w", zone, err)
	}
	return loc, nil
}

// Ordered returns the catalog with defaultZone moved to the front.
func Ordered(defaultZone string) []Zone {
	out := make([]Zone, 0, len(Catalog))
	for _, z := range Catalog {
		if z.Value == defaultZone {
			out = append(out, z)
		}
	}
	for _, z := range Catalog {
		if z.Value != defaultZone {
			out = append(out, z)
		}
	}
	return out
}

// Options renders Ordered(defaultZone) as menu entries labelled with the
// wall-clock time of now in each zone.
func Options(defaultZone string, now time.Time) []Option {
	zones := Ordered(defaultZone)
	out := make([]Option, 0, len(zones))
	for _, z := range zones {
		label := z.Name
		if loc, err := time.LoadLocation(z.Value); err == nil {
			label = fmt.Sprintf("%s (%s)", z.Name, now.In(loc).Format("15:04"))
		}
		out = append(out, Option{Label: label, Value: z.Value})
	}
	return out
}
