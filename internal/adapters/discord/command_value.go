package discord

import (
	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain/entities"
	pkgdiscord "leaguebot/pkg/discord"
)

// HandleValue posts the player valuation report publicly.
func (h *Handler) HandleValue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := newResponder(s, i.Interaction)
	stats := statsFromOptions(optionMap(i.ApplicationCommandData().Options))
	r.send(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildValueEmbed(displayName(i.Interaction), stats)},
	})
}

func (h *Handler) HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	newResponder(s, i.Interaction).ephemeralEmbed(pkgdiscord.BuildHelpEmbed())
}

func statsFromOptions(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) entities.PlayerStats {
	get := func(name string) int64 {
		o, ok := opts[name]
		if !ok {
			return 0
		}
		if v, ok := o.Value.(float64); ok {
			return int64(v)
		}
		return 0
	}
	return entities.PlayerStats{
		Tackles:  get(entities.StatTackles),
		Inters:   get(entities.StatInters),
		Saves:    get(entities.StatSaves),
		Goals:    get(entities.StatGoals),
		Passes:   get(entities.StatPasses),
		Assists:  get(entities.StatAssists),
		Dribbles: get(entities.StatDribbles),
		Shots:    get(entities.StatShots),
		Games:    get(entities.StatGames),
	}
}
