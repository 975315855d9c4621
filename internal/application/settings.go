package application

import (
	"context"
	"fmt"
	"log/slog"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/input"
	"leaguebot/internal/ports/output"
	"leaguebot/pkg/tz"
)

var _ input.SettingsUseCase = (*SettingsService)(nil)

type SettingsService struct {
	repo            output.GuildSettingsRepository
	defaultTimezone string
}

func NewSettingsService(repo output.GuildSettingsRepository, defaultTimezone string) *SettingsService {
	if defaultTimezone == "" {
		defaultTimezone = tz.Default
	}
	return &SettingsService{repo: repo, defaultTimezone: defaultTimezone}
}

func (s *SettingsService) SetCoachesChannel(ctx context.Context, actor entities.Actor, guildID, channelID string) error {
	return s.update(ctx, actor, guildID, func(gs *entities.GuildSettings) {
		gs.CoachesChannelID = channelID
	})
}

func (s *SettingsService) SetSignChannel(ctx context.Context, actor entities.Actor, guildID, channelID string) error {
	return s.update(ctx, actor, guildID, func(gs *entities.GuildSettings) {
		gs.SignChannelID = channelID
	})
}

// SetDefaultTimezone rejects zones outside the catalog before anything is stored.
func (s *SettingsService) SetDefaultTimezone(ctx context.Context, actor entities.Actor, guildID, zone string) error {
	if !actor.IsAdmin {
		return domain.ErrPermissionDenied
	}
	if !tz.IsKnown(zone) {
		return domain.ErrInvalidTimezone
	}
	return s.update(ctx, actor, guildID, func(gs *entities.GuildSettings) {
		gs.DefaultTimezone = zone
	})
}

func (s *SettingsService) ResetDefaultTimezone(ctx context.Context, actor entities.Actor, guildID string) error {
	return s.update(ctx, actor, guildID, func(gs *entities.GuildSettings) {
		gs.DefaultTimezone = ""
	})
}

// EffectiveTimezone is the guild default, or the configured default when unset.
func (s *SettingsService) EffectiveTimezone(ctx context.Context, guildID string) string {
	gs, err := s.repo.Get(ctx, guildID)
	if err != nil {
		slog.WarnContext(ctx, "load guild settings", "guild", guildID, "error", err)
		return s.defaultTimezone
	}
	if gs.DefaultTimezone == "" {
		return s.defaultTimezone
	}
	return gs.DefaultTimezone
}

// update is a read-modify-write of the guild's settings; concurrent writers race
// and the last one wins.
func (s *SettingsService) update(ctx context.Context, actor entities.Actor, guildID string, mutate func(*entities.GuildSettings)) error {
	if !actor.IsAdmin {
		return domain.ErrPermissionDenied
	}
	gs, err := s.repo.Get(ctx, guildID)
	if err != nil {
		return fmt.Errorf("load settings for %s: %w", guildID, err)
	}
	gs.GuildID = guildID
	mutate(gs)
	if err := s.repo.Save(ctx, gs); err != nil {
		return fmt.Errorf("save settings for %s: %w", guildID, err)
	}
	slog.InfoContext(ctx, "guild settings updated", "guild", guildID, "user", actor.UserID)
	return nil
}
