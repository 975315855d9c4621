package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"leaguebot/internal/domain/entities"
)

var money = message.NewPrinter(language.English)

var statLabels = map[string]string{
	entities.StatTackles:  "🛡️ Tackles",
	entities.StatInters:   "🔒 Interceptions",
	entities.StatSaves:    "🧤 Saves",
	entities.StatGoals:    "⚽ Goals",
	entities.StatShots:    "🎯 Shots",
	entities.StatDribbles: "👟 Dribbles",
	entities.StatAssists:  "🅰️ Assists",
	entities.StatPasses:   "🔄 Passes",
	entities.StatGames:    "🏟️ Games",
}

var playerTypeLabels = map[entities.PlayerType]string{
	entities.PlayerDefensiveSpecialist: "🛡️ Defensive Specialist",
	entities.PlayerOffensivePowerhouse: "⚽ Offensive Powerhouse",
	entities.PlayerElitePlaymaker:      "🔄 Elite Playmaker",
	entities.PlayerTwoWay:              "⚖️ Two-Way Player",
	entities.PlayerDefensivePlaymaker:  "🧠 Defensive Playmaker",
	entities.PlayerCreativeAttacker:    "🎯 Creative Attacker",
	entities.PlayerComplete:            "🌟 Complete Player",
}

// Money formats an amount as "$1,234".
func Money(v int64) string {
	return money.Sprintf("$%d", v)
}

// Bar renders a percentage as ten cells.
func Bar(percent int) string {
	full := percent / 10
	var b strings.Builder
	for i := 0; i < 10; i++ {
		if i < full {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	return b.String()
}

// BuildValueEmbed renders the player valuation report.
func BuildValueEmbed(username string, p entities.PlayerStats) *discordgo.MessageEmbed {
	def := p.Percent(p.DefensiveValue())
	off := p.Percent(p.OffensiveValue())
	play := p.Percent(p.PlaymakerValue())
	avg := func(stat string) string { return fmt.Sprintf("%.2f", p.PerGame(stat)) }

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚽ %s's Player Value Analysis", username),
		Description: fmt.Sprintf("**%s** | **%s** | **%s/Game**",
			Money(p.Value()), playerTypeLabels[p.Type()], Money(p.ValuePerGame())),
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Stat Distribution",
				Value: fmt.Sprintf("🛡️ **%d%%** %s\n⚽ **%d%%** %s\n🔄 **%d%%** %s", def, Bar(def), off, Bar(off), play, Bar(play)),
			},
			{
				Name:   "🛡️ Defensive",
				Value:  fmt.Sprintf("**Tackles:** %d\n**Interceptions:** %d\n**Saves:** %d", p.Tackles, p.Inters, p.Saves),
				Inline: true,
			},
			{
				Name:   "⚽ Offensive",
				Value:  fmt.Sprintf("**Goals:** %d\n**Shots:** %d\n**Dribbles:** %d", p.Goals, p.Shots, p.Dribbles),
				Inline: true,
			},
			{
				Name:   "🔄 Playmaker",
				Value:  fmt.Sprintf("**Assists:** %d\n**Passes:** %d\n**Games:** %d", p.Assists, p.Passes, p.Games),
				Inline: true,
			},
			{
				Name: "Per Game Averages",
				Value: fmt.Sprintf("**Goals:** %s • **Assists:** %s • **Tackles:** %s\n**Inters:** %s • **Saves:** %s • **Passes:** %s\n**Dribbles:** %s • **Shots:** %s",
					avg(entities.StatGoals), avg(entities.StatAssists), avg(entities.StatTackles),
					avg(entities.StatInters), avg(entities.StatSaves), avg(entities.StatPasses),
					avg(entities.StatDribbles), avg(entities.StatShots)),
			},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "LL Value Bot | Advanced Player Analysis"},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// BuildHelpEmbed is the static capability summary.
func BuildHelpEmbed() *discordgo.MessageEmbed {
	weights := make([]string, 0, len(entities.StatOrder))
	for _, stat := range entities.StatOrder {
		weights = append(weights, fmt.Sprintf("%s: **%s**", statLabels[stat], Money(entities.StatWeights[stat])))
	}
	return &discordgo.MessageEmbed{
		Title:       "⚽ Legacy League Bot Help",
		Description: "Player value calculator and event management system",
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📊 Player Value", Value: "`/value` - Calculate player value with all required stats (public response)"},
			{Name: "📅 Event Management", Value: "`/event` - Create training events with improved timezone support\n• Quick creation with date/time parameters\n• Interactive timezone selection\n• RSVP system with attendance tracking"},
			{Name: "⚙️ Settings", Value: "`/settings` - Configure server defaults (admin only)\n• Set default timezone\n• Configure coaches channel\n• Configure sign notifications channel"},
			{Name: "👥 Team Management", Value: "`/teams` - Manage teams (admin only)\n`/sign` - Sign players to your team (leader only)"},
			{Name: "⚖️ Stat Weights", Value: strings.Join(weights, " | ")},
			{Name: "🏆 Player Types", Value: "🛡️ Defensive | ⚽ Offensive | 🔄 Playmaker | ⚖️ Two-Way | 🧠 Def-Play | 🎯 Creative | 🌟 Complete"},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Legacy League Bot - Advanced Player Analysis & Event Management"},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
