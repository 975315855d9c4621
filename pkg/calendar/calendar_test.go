package calendar

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	start := time.Date(2025, time.August, 1, 20, 0, 0, 0, berlin)
	end := start.Add(90 * time.Minute)

	link := Link("Scrim & Review", "Bring headsets", start, end)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", u.Host)
	assert.Equal(t, "/calendar/render", u.Path)
	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Scrim & Review", q.Get("text"))
	assert.Equal(t, "Bring headsets", q.Get("details"))
	assert.Equal(t, "20250801T180000Z/20250801T193000Z", q.Get("dates"))
}

func TestStamp(t *testing.T) {
	assert.Equal(t, "20251231T235959Z", Stamp(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
}
