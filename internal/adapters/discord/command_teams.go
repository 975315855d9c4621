package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain"
	pkgdiscord "leaguebot/pkg/discord"
)

// HandleTeams runs the /teams subcommands.
func (h *Handler) HandleTeams(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := newResponder(s, i.Interaction)
	actor := actorOf(i.Interaction)
	if !actor.IsAdmin {
		r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.msg("teams.admin_only", nil)))
		return
	}

	ctx := context.Background()
	guildID := i.GuildID
	name, opts := subcommand(i.ApplicationCommandData())

	switch name {
	case "add":
		teamName := stringOption(opts, "name")
		team, err := h.teams.AddTeam(ctx, actor, guildID, teamName, idOption(opts, "leader"), idOption(opts, "role"))
		if err != nil {
			r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.teamErrorText(err, map[string]any{"Team": teamName})))
			return
		}
		r.ephemeralEmbed(pkgdiscord.BuildTeamSuccessEmbed(
			h.msg("teams.created_title", nil),
			h.msg("teams.created", map[string]any{"Team": team.Name}),
			&discordgo.MessageEmbedField{Name: "Leader", Value: pkgdiscord.Mention(team.LeaderID), Inline: true},
			&discordgo.MessageEmbedField{Name: "Role", Value: pkgdiscord.RoleMention(team.RoleID), Inline: true},
		))

	case "remove":
		teamName := stringOption(opts, "name")
		team, err := h.teams.RemoveTeam(ctx, actor, guildID, teamName)
		if errors.Is(err, domain.ErrNotFound) {
			r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.msg("teams.team_missing", map[string]any{"Team": teamName})))
			return
		}
		if err != nil {
			r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.teamErrorText(err, nil)))
			return
		}
		r.ephemeralEmbed(pkgdiscord.BuildTeamSuccessEmbed(
			h.msg("teams.removed_title", nil),
			h.msg("teams.removed", map[string]any{"Team": team.Name}),
		))

	case "kick":
		userID := idOption(opts, "user")
		team, err := h.teams.Kick(ctx, actor, guildID, userID)
		if errors.Is(err, domain.ErrNotFound) {
			r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.msg("teams.not_member", map[string]any{"User": pkgdiscord.Mention(userID)})))
			return
		}
		if err != nil {
			r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.teamErrorText(err, nil)))
			return
		}
		r.ephemeralEmbed(pkgdiscord.BuildTeamSuccessEmbed(
			h.msg("teams.kicked_title", nil),
			h.msg("teams.kicked", map[string]any{"User": pkgdiscord.Mention(userID), "Team": team.Name}),
		))

	case "list":
		teams, err := h.teams.ListTeams(ctx, guildID)
		if err != nil {
			r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.teamErrorText(err, nil)))
			return
		}
		if len(teams) == 0 {
			r.ephemeral(h.msg("teams.none", nil))
			return
		}
		r.ephemeralEmbed(pkgdiscord.BuildTeamListEmbed(teams))

	default:
		r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.msg("errors.generic", nil)))
	}
}

// HandleSign signs a player to the team the caller leads.
func (h *Handler) HandleSign(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := newResponder(s, i.Interaction)
	actor := actorOf(i.Interaction)
	userID := idOption(optionMap(i.ApplicationCommandData().Options), "user")

	team, err := h.teams.Sign(context.Background(), actor, i.GuildID, userID)
	if err != nil {
		r.ephemeralEmbed(pkgdiscord.BuildTeamErrorEmbed(h.teamErrorText(err, map[string]any{"User": pkgdiscord.Mention(userID)})))
		return
	}
	r.send(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildSignedEmbed(team, userID, actor.UserID)},
	})
}

// teamErrorText is errorText with the team wording for permission failures:
// the admin check runs before any team call, so a denial there means the
// caller leads no team.
func (h *Handler) teamErrorText(err error, data map[string]any) string {
	if errors.Is(err, domain.ErrPermissionDenied) {
		return h.msg("teams.not_leader", nil)
	}
	return h.errorText(err, data)
}
