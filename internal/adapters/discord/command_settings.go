package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain"
	pkgdiscord "leaguebot/pkg/discord"
)

// HandleSettings runs the /settings subcommands.
func (h *Handler) HandleSettings(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := newResponder(s, i.Interaction)
	actor := actorOf(i.Interaction)
	if !actor.IsAdmin {
		r.ephemeral(h.msg("settings.admin_only", nil))
		return
	}

	ctx := context.Background()
	guildID := i.GuildID
	name, opts := subcommand(i.ApplicationCommandData())

	var (
		err  error
		key  string
		data map[string]any
	)
	switch name {
	case "set-coaches-channel":
		channelID := idOption(opts, "channel")
		err = h.settings.SetCoachesChannel(ctx, actor, guildID, channelID)
		key, data = "settings.coaches_channel_set", map[string]any{"Channel": pkgdiscord.ChannelMention(channelID)}
	case "set-sign-channel":
		channelID := idOption(opts, "channel")
		err = h.settings.SetSignChannel(ctx, actor, guildID, channelID)
		key, data = "settings.sign_channel_set", map[string]any{"Channel": pkgdiscord.ChannelMention(channelID)}
	case "set-default-timezone":
		zone := stringOption(opts, "timezone")
		err = h.settings.SetDefaultTimezone(ctx, actor, guildID, zone)
		key, data = "settings.timezone_set", map[string]any{"Timezone": zone}
	case "reset-default-timezone":
		err = h.settings.ResetDefaultTimezone(ctx, actor, guildID)
		key = "settings.timezone_reset"
	default:
		r.ephemeral(h.msg("settings.unknown_subcommand", nil))
		return
	}

	if errors.Is(err, domain.ErrPermissionDenied) {
		r.ephemeral(h.msg("settings.admin_only", nil))
		return
	}
	if err != nil {
		r.ephemeral(h.errorText(err, nil))
		return
	}
	r.ephemeral(h.msg(key, data))
}
