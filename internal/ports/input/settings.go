package input

import (
	"context"

	"leaguebot/internal/domain/entities"
)

type SettingsUseCase interface {
	SetCoachesChannel(ctx context.Context, actor entities.Actor, guildID, channelID string) error
	SetSignChannel(ctx context.Context, actor entities.Actor, guildID, channelID string) error
	SetDefaultTimezone(ctx context.Context, actor entities.Actor, guildID, zone string) error
	ResetDefaultTimezone(ctx context.Context, actor entities.Actor, guildID string) error
	EffectiveTimezone(ctx context.Context, guildID string) string
}

type TeamUseCase interface {
	AddTeam(ctx context.Context, actor entities.Actor, guildID, name, leaderID, roleID string) (*entities.Team, error)
	RemoveTeam(ctx context.Context, actor entities.Actor, guildID, name string) (*entities.Team, error)
	Kick(ctx context.Context, actor entities.Actor, guildID, userID string) (*entities.Team, error)
	ListTeams(ctx context.Context, guildID string) ([]entities.Team, error)
	Sign(ctx context.Context, actor entities.Actor, guildID, userID string) (*entities.Team, error)
}
