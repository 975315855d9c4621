package output

import (
	"context"

	"leaguebot/internal/domain/entities"
)

// GuildSettingsRepository returns zero-valued settings for unknown guilds.
type GuildSettingsRepository interface {
	Get(ctx context.Context, guildID string) (*entities.GuildSettings, error)
	Save(ctx context.Context, settings *entities.GuildSettings) error
}

// TeamRepository persists rosters per guild. List returns teams sorted by name.
type TeamRepository interface {
	List(ctx context.Context, guildID string) ([]entities.Team, error)
	Save(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, guildID, name string) error
}
