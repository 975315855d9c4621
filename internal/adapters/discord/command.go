package discord

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/application"
	"leaguebot/internal/domain/entities"
	"leaguebot/pkg/tz"
)

// Command names.
const (
	cmdValue    = "value"
	cmdHelp     = "help"
	cmdEvent    = "event"
	cmdSettings = "settings"
	cmdTeams    = "teams"
	cmdSign     = "sign"
)

var adminPermission int64 = discordgo.PermissionAdministrator

// Commands returns every slash command the bot registers.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		valueCommand(),
		{Name: cmdHelp, Description: "Show help information"},
		eventCommand(),
		settingsCommand(),
		teamsCommand(),
		{
			Name:        cmdSign,
			Description: "Sign a player to your team (leader only)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to sign", Required: true},
			},
		},
	}
}

func valueCommand() *discordgo.ApplicationCommand {
	descriptions := map[string]string{
		entities.StatTackles:  "Number of tackles",
		entities.StatInters:   "Number of interceptions",
		entities.StatSaves:    "Number of saves",
		entities.StatGoals:    "Number of goals",
		entities.StatPasses:   "Number of passes",
		entities.StatAssists:  "Number of assists",
		entities.StatDribbles: "Number of dribbles",
		entities.StatShots:    "Number of shots",
		entities.StatGames:    "Number of games",
	}
	options := make([]*discordgo.ApplicationCommandOption, 0, len(valueOptionOrder))
	for _, stat := range valueOptionOrder {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        stat,
			Description: descriptions[stat],
			Required:    true,
		})
	}
	return &discordgo.ApplicationCommand{
		Name:        cmdValue,
		Description: "Calculate player value based on stats",
		Options:     options,
	}
}

// valueOptionOrder is the option order of /value.
var valueOptionOrder = []string{
	entities.StatTackles,
	entities.StatInters,
	entities.StatSaves,
	entities.StatGoals,
	entities.StatPasses,
	entities.StatAssists,
	entities.StatDribbles,
	entities.StatShots,
	entities.StatGames,
}

func timezoneChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(tz.Catalog))
	for _, z := range tz.Catalog {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: z.Name, Value: z.Value})
	}
	return choices
}

func durationChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(application.AllowedDurations))
	for _, d := range application.AllowedDurations {
		v := strconv.FormatFloat(d, 'f', -1, 64)
		name := v + " hours"
		if d == 1 {
			name = "1 hour"
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: v})
	}
	return choices
}

func eventCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     cmdEvent,
		Description:              "Create a training event",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "Event title", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "Event description/details"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "Event date (YYYY-MM-DD)"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "time", Description: "Event time (HH:MM, 24h format)"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "timezone", Description: "Event timezone", Choices: timezoneChoices()},
			{Type: discordgo.ApplicationCommandOptionString, Name: "location", Description: "Event location (VC, channel, or description)"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "duration", Description: "Event duration in hours", Choices: durationChoices()},
		},
	}
}

func settingsCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     cmdSettings,
		Description:              "Configure server settings (admin only)",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "set-coaches-channel", Description: "Set the coaches channel",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Coaches channel", Required: true},
				},
			},
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "set-sign-channel", Description: "Set the sign notifications channel",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Sign notifications channel", Required: true},
				},
			},
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "set-default-timezone", Description: "Set the default event timezone",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "timezone", Description: "Timezone", Required: true, Choices: timezoneChoices()},
				},
			},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "reset-default-timezone", Description: "Reset the default timezone to UTC"},
		},
	}
}

func teamsCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     cmdTeams,
		Description:              "Manage teams (admin only)",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "add", Description: "Add a team",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Team name", Required: true},
					{Type: discordgo.ApplicationCommandOptionUser, Name: "leader", Description: "Team leader", Required: true},
					{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Team role", Required: true},
				},
			},
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "remove", Description: "Remove a team",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Team name", Required: true},
				},
			},
			{
				Type: discordgo.ApplicationCommandOptionSubCommand, Name: "kick", Description: "Remove a member from your team",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to remove", Required: true},
				},
			},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "List all teams"},
		},
	}
}

// optionMap indexes command options by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, o := range options {
		m[o.Name] = o
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := opts[name]; ok {
		if s, ok := o.Value.(string); ok {
			return s
		}
	}
	return ""
}

// idOption reads a user, role or channel option, which Discord sends as a snowflake string.
func idOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	return stringOption(opts, name)
}

// subcommand returns the invoked subcommand and its options.
func subcommand(data discordgo.ApplicationCommandInteractionData) (string, map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	if len(data.Options) == 0 {
		return "", nil
	}
	sub := data.Options[0]
	return sub.Name, optionMap(sub.Options)
}
