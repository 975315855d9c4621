package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/input"
)

const (
	colorEvent   = 0x00B0F4
	colorInfo    = 0x0099FF
	colorSuccess = 0x00FF00
	colorError   = 0xFF0000

	spacer = "\u200B"
)

// Button custom IDs of a posted event.
const (
	ButtonGoing = "event_going"
	ButtonMaybe = "event_maybe"
	ButtonCant  = "event_cant"
)

// Mention formats a user mention.
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// RoleMention formats a role mention.
func RoleMention(roleID string) string {
	return "<@&" + roleID + ">"
}

// ChannelMention formats a channel mention.
func ChannelMention(channelID string) string {
	return "<#" + channelID + ">"
}

// FormatDuration renders "2 hours", "1 hour" or "1.5 hours".
func FormatDuration(hours float64) string {
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%s hours", strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", hours), "0"), "."))
}

// BuildEventEmbed renders a posted event with its rendered attendance.
func BuildEventEmbed(event *entities.EventRecord, view *input.LedgerView) *discordgo.MessageEmbed {
	location := event.Location
	if location == "" {
		location = "TBA"
	}

	var links []string
	if event.ScheduledEventURL != "" {
		links = append(links, fmt.Sprintf("[🔗 Event](%s)", event.ScheduledEventURL))
	}
	if event.CalendarLink != "" {
		links = append(links, fmt.Sprintf("[📅 Calendar](%s)", event.CalendarLink))
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📅 **%s**", strings.ToUpper(event.Title)),
		Color: colorEvent,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Time", Value: event.DisplayTime, Inline: true},
			{Name: "Duration", Value: FormatDuration(event.DurationHours), Inline: true},
			{Name: spacer, Value: spacer, Inline: true},
			{Name: "Location", Value: location},
			{Name: fmt.Sprintf("✅ Attendees (%d)", view.GoingCount), Value: strings.Join(view.Going, " | "), Inline: true},
			{Name: fmt.Sprintf("🤔 Maybe (%d)", view.MaybeCount), Value: strings.Join(view.Maybe, " | "), Inline: true},
			{Name: fmt.Sprintf("❌ No (%d)", view.CannotCount), Value: strings.Join(view.Cannot, " | "), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Created by " + event.CreatorName},
	}
	if len(links) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Links", Value: strings.Join(links, " ")})
	}
	if event.Description != "" {
		embed.Description = "_" + event.Description + "_"
	}
	return embed
}

// EventButtons returns the RSVP button row attached to a posted event.
func EventButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{CustomID: ButtonGoing, Emoji: &discordgo.ComponentEmoji{Name: "✅"}, Style: discordgo.SuccessButton},
			discordgo.Button{CustomID: ButtonMaybe, Emoji: &discordgo.ComponentEmoji{Name: "🤔"}, Style: discordgo.SecondaryButton},
			discordgo.Button{CustomID: ButtonCant, Emoji: &discordgo.ComponentEmoji{Name: "❌"}, Style: discordgo.DangerButton},
		}},
	}
}

// BuildAbsenceEmbed is the coaches notice for a "cannot attend" answer.
func BuildAbsenceEmbed(event *entities.EventRecord, userID, reason string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ RSVP: Not Attending",
		Description: Mention(userID) + " cannot attend the event.",
		Color:       colorError,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Event", Value: event.Title},
			{Name: "When", Value: event.DisplayTime},
			{Name: "Reason", Value: reason},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// BuildTeamErrorEmbed is the red embed used for every team management failure.
func BuildTeamErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Team Management Error",
		Description: message,
		Color:       colorError,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// BuildTeamSuccessEmbed is the green confirmation embed of team commands.
func BuildTeamSuccessEmbed(title, description string, fields ...*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ " + title,
		Description: description,
		Color:       colorSuccess,
		Fields:      fields,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// BuildTeamListEmbed lists every team of a guild.
func BuildTeamListEmbed(teams []entities.Team) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(teams))
	for _, t := range teams {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "**" + t.Name + "**",
			Value: fmt.Sprintf("Leader: %s\nRole: %s\nMembers: %d", Mention(t.LeaderID), RoleMention(t.RoleID), len(t.Members)),
		})
	}
	return &discordgo.MessageEmbed{Title: "Teams List", Color: colorInfo, Fields: fields}
}

// BuildSignedEmbed confirms a signing to the team leader.
func BuildSignedEmbed(team *entities.Team, userID, captainID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ Player Signed Successfully",
		Description: fmt.Sprintf("%s has been signed to **%s**!", Mention(userID), team.Name),
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Player", Value: Mention(userID), Inline: true},
			{Name: "Team", Value: "**" + team.Name + "**", Inline: true},
			{Name: "Captain", Value: Mention(captainID), Inline: true},
			{Name: "Role Assigned", Value: RoleMention(team.RoleID), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Legacy League Team Management"},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// BuildSignNoticeEmbed announces a signing in the sign channel.
func BuildSignNoticeEmbed(team *entities.Team, userID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎯 New Player Signing",
		Description: fmt.Sprintf("%s has been signed to **%s**!", Mention(userID), team.Name),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Player", Value: Mention(userID), Inline: true},
			{Name: "Team", Value: "**" + team.Name + "**", Inline: true},
			{Name: "Captain", Value: Mention(team.LeaderID), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Legacy League Signing Notification"},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
