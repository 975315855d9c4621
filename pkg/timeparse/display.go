package timeparse

import (
	"fmt"
	"time"
)

// Display renders t as a Discord full timestamp followed by the zone
// abbreviation and name, e.g. "<t:1754071200:F>\nBST (Europe/London)".
func Display(t time.Time) string {
	abbr, _ := t.Zone()
	return fmt.Sprintf("<t:%d:F>\n%s (%s)", t.Unix(), abbr, t.Location().String())
}
