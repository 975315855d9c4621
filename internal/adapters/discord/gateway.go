package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/application"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
	pkgdiscord "leaguebot/pkg/discord"
)

var (
	_ output.EventPublisher        = (*Gateway)(nil)
	_ output.ScheduledEventCreator = (*Gateway)(nil)
	_ output.LocationPrompter      = (*Gateway)(nil)
	_ output.Notifier              = (*Gateway)(nil)
	_ output.RoleManager           = (*Gateway)(nil)
)

// Gateway implements the outbound ports on top of a Discord session.
type Gateway struct {
	session *discordgo.Session
	t       output.T
	locale  string
}

func NewGateway(session *discordgo.Session, t output.T, locale string) *Gateway {
	return &Gateway{session: session, t: t, locale: locale}
}

func (g *Gateway) Publish(ctx context.Context, event *entities.EventRecord) (string, error) {
	msg, err := g.session.ChannelMessageSendComplex(event.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildEventEmbed(event, application.RenderLedger(event.Ledger))},
		Components: pkgdiscord.EventButtons(),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send event message: %w", err)
	}
	return msg.ID, nil
}

func (g *Gateway) Refresh(ctx context.Context, event *entities.EventRecord) error {
	edit := discordgo.NewMessageEdit(event.ChannelID, event.MessageID).
		SetEmbed(pkgdiscord.BuildEventEmbed(event, application.RenderLedger(event.Ledger)))
	if _, err := g.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("edit event message %s: %w", event.MessageID, err)
	}
	return nil
}

func (g *Gateway) CreateScheduledEvent(ctx context.Context, event *entities.EventRecord) (string, error) {
	start, end := event.StartsAt, event.EndsAt
	scheduled, err := g.session.GuildScheduledEventCreate(event.GuildID, &discordgo.GuildScheduledEventParams{
		Name:               event.Title,
		Description:        event.Description,
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: event.Location},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create scheduled event: %w", err)
	}
	return fmt.Sprintf("https://discord.com/events/%s/%s", event.GuildID, scheduled.ID), nil
}

// PromptLocation tries a direct message, then mentions the user in channelID.
func (g *Gateway) PromptLocation(ctx context.Context, userID, channelID string) (string, error) {
	dm, err := g.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err == nil {
		if _, err = g.session.ChannelMessageSend(dm.ID, g.t.T(g.locale, "event.location_fallback_dm", nil), discordgo.WithContext(ctx)); err == nil {
			return dm.ID, nil
		}
	}

	text := g.t.T(g.locale, "event.location_fallback_channel", map[string]any{"User": pkgdiscord.Mention(userID)})
	if _, err := g.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("prompt location in %s: %w", channelID, err)
	}
	return channelID, nil
}

func (g *Gateway) NotifyAbsence(ctx context.Context, channelID string, event *entities.EventRecord, userID, reason string) error {
	embed := pkgdiscord.BuildAbsenceEmbed(event, userID, reason)
	if _, err := g.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("notify absence in %s: %w", channelID, err)
	}
	return nil
}

func (g *Gateway) NotifySigning(ctx context.Context, channelID string, team *entities.Team, userID string) error {
	embed := pkgdiscord.BuildSignNoticeEmbed(team, userID)
	if _, err := g.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("notify signing in %s: %w", channelID, err)
	}
	return nil
}

func (g *Gateway) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := g.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("add role %s to %s: %w", roleID, userID, err)
	}
	return nil
}

func (g *Gateway) RemoveRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := g.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("remove role %s from %s: %w", roleID, userID, err)
	}
	return nil
}
