package discord

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

var presences = []discordgo.UpdateStatusData{
	{
		Status:     string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{{Name: "Rematch", Type: discordgo.ActivityTypeGame}},
	},
	{
		Status:     string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{{Name: "The Legacy League 🏆", Type: discordgo.ActivityTypeWatching}},
	},
	{
		Status:     string(discordgo.StatusDoNotDisturb),
		Activities: []*discordgo.Activity{{Name: "Scrims", Type: discordgo.ActivityTypeStreaming, URL: "https://www.twitch.tv/itsn1ghtm"}},
	},
}

// presenceRotator cycles the bot's status through presences.
type presenceRotator struct {
	mu   sync.Mutex
	next int
	set  func(discordgo.UpdateStatusData) error
}

func (p *presenceRotator) rotate() {
	p.mu.Lock()
	data := presences[p.next]
	p.next = (p.next + 1) % len(presences)
	p.mu.Unlock()

	if err := p.set(data); err != nil {
		slog.Warn("update presence", "error", err)
	}
}

// startPresence sets the first presence at once and rotates every interval.
func startPresence(s *discordgo.Session, interval time.Duration) (*cron.Cron, error) {
	rotator := &presenceRotator{set: func(data discordgo.UpdateStatusData) error {
		return s.UpdateStatusComplex(data)
	}}
	rotator.rotate()

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), rotator.rotate); err != nil {
		return nil, fmt.Errorf("schedule presence rotation: %w", err)
	}
	c.Start()
	return c, nil
}
