package jsonstore

import (
	"context"
	"sync"

	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

var _ output.GuildSettingsRepository = (*GuildSettingsRepository)(nil)

type settingsDocument struct {
	Guilds map[string]guildSettings `json:"guilds"`
}

type guildSettings struct {
	DefaultTimezone  string `json:"defaultTimezone,omitempty"`
	CoachesChannelID string `json:"coachesChannelId,omitempty"`
	SignChannelID    string `json:"signChannelId,omitempty"`
}

// GuildSettingsRepository stores {"guilds": {guildId: {...}}}.
type GuildSettingsRepository struct {
	path string

	mu  sync.Mutex
	doc settingsDocument
}

// NewGuildSettingsRepository loads path, creating an empty document when it
// does not exist.
func NewGuildSettingsRepository(path string) (*GuildSettingsRepository, error) {
	r := &GuildSettingsRepository{path: path, doc: settingsDocument{Guilds: make(map[string]guildSettings)}}
	if err := load(path, &r.doc); err != nil {
		return nil, err
	}
	if r.doc.Guilds == nil {
		r.doc.Guilds = make(map[string]guildSettings)
	}
	return r, nil
}

func (r *GuildSettingsRepository) Get(_ context.Context, guildID string) (*entities.GuildSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.doc.Guilds[guildID]
	return &entities.GuildSettings{
		GuildID:          guildID,
		DefaultTimezone:  g.DefaultTimezone,
		CoachesChannelID: g.CoachesChannelID,
		SignChannelID:    g.SignChannelID,
	}, nil
}

func (r *GuildSettingsRepository) Save(_ context.Context, gs *entities.GuildSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Guilds[gs.GuildID] = guildSettings{
		DefaultTimezone:  gs.DefaultTimezone,
		CoachesChannelID: gs.CoachesChannelID,
		SignChannelID:    gs.SignChannelID,
	}
	return save(r.path, r.doc)
}
