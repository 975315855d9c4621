package discord

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// interactionUser returns the invoking user in guilds and in DMs.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func displayName(i *discordgo.Interaction) string {
	if name := resolveDisplayName(i.Member); name != "" {
		return name
	}
	if u := interactionUser(i); u != nil {
		if u.GlobalName != "" {
			return u.GlobalName
		}
		return u.Username
	}
	return ""
}

// actorOf describes the invoking member. Administrator is the only permission
// that counts as admin.
func actorOf(i *discordgo.Interaction) entities.Actor {
	actor := entities.Actor{}
	if u := interactionUser(i); u != nil {
		actor.UserID = u.ID
	}
	if i.Member != nil {
		actor.IsAdmin = i.Member.Permissions&discordgo.PermissionAdministrator != 0
	}
	return actor
}

// responder sends exactly one visible response per interaction: the first
// send responds, later ones edit the acknowledgment. Failures are logged and
// swallowed.
type responder struct {
	s     *discordgo.Session
	i     *discordgo.Interaction
	acked bool
}

func newResponder(s *discordgo.Session, i *discordgo.Interaction) *responder {
	return &responder{s: s, i: i}
}

// deferReply acknowledges the interaction when the work may outlast Discord's
// three second window.
func (r *responder) deferReply(ephemeral bool) {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := r.s.InteractionRespond(r.i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		slog.Warn("defer interaction", "interaction", r.i.ID, "error", err)
		return
	}
	r.acked = true
}

func (r *responder) send(data *discordgo.InteractionResponseData) {
	if !r.acked {
		err := r.s.InteractionRespond(r.i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: data,
		})
		if err == nil {
			r.acked = true
			return
		}
		slog.Warn("respond to interaction, editing instead", "interaction", r.i.ID, "error", err)
	}
	edit := &discordgo.WebhookEdit{Content: &data.Content}
	if data.Embeds != nil {
		edit.Embeds = &data.Embeds
	}
	if data.Components != nil {
		edit.Components = &data.Components
	}
	if _, err := r.s.InteractionResponseEdit(r.i, edit); err != nil {
		slog.Error("edit interaction response", "interaction", r.i.ID, "error", err)
	}
	r.acked = true
}

// open replies with a modal. Modals cannot follow an acknowledgment.
func (r *responder) open(modal *discordgo.InteractionResponseData) {
	err := r.s.InteractionRespond(r.i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: modal,
	})
	if err != nil {
		slog.Error("open modal", "interaction", r.i.ID, "modal", modal.CustomID, "error", err)
		return
	}
	r.acked = true
}

func (r *responder) ephemeral(content string) {
	r.send(&discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral})
}

func (r *responder) ephemeralEmbed(embed *discordgo.MessageEmbed) {
	r.send(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

// errorKey maps err to its i18n message ID. Unknown errors map to the generic
// message.
func errorKey(err error) string {
	if code := domain.Code(err); code != "" {
		return "errors." + code
	}
	return "errors.generic"
}

// errorText renders err for the user and logs it when it is not a domain error.
func (h *Handler) errorText(err error, data map[string]any) string {
	if domain.Code(err) == "" {
		slog.Error("interaction failed", "error", err)
	}
	var dup *domain.DuplicateMembershipError
	if errors.As(err, &dup) {
		if data == nil {
			data = map[string]any{}
		}
		data["Team"] = dup.Team
	}
	return h.msg(errorKey(err), data)
}
