package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	pkgdiscord "leaguebot/pkg/discord"
)

const (
	modalCantReasonPrefix = "cant_reason_modal:"
	inputCantReason       = "cant_reason_input"
)

// HandleRSVP handles the Going and Maybe buttons of a posted event.
func (h *Handler) HandleRSVP(s *discordgo.Session, i *discordgo.InteractionCreate) {
	status, key := entities.RSVPGoing, "rsvp.going"
	if i.MessageComponentData().CustomID == pkgdiscord.ButtonMaybe {
		status, key = entities.RSVPMaybe, "rsvp.maybe"
	}
	h.setStatus(newResponder(s, i.Interaction), i.Message.ID, status, "", key)
}

// HandleCant asks for the mandatory reason before recording a "cannot attend".
func (h *Handler) HandleCant(s *discordgo.Session, i *discordgo.InteractionCreate) {
	newResponder(s, i.Interaction).open(&discordgo.InteractionResponseData{
		CustomID: modalCantReasonPrefix + i.Message.ID,
		Title:    h.msg("rsvp.cant_title", nil),
		Components: []discordgo.MessageComponent{
			pkgdiscord.TextRow(discordgo.TextInput{
				CustomID: inputCantReason,
				Label:    h.msg("rsvp.cant_label", nil),
				Style:    discordgo.TextInputParagraph,
				Required: true,
			}),
		},
	})
}

func (h *Handler) handleCantReasonModal(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	messageID := strings.TrimPrefix(data.CustomID, modalCantReasonPrefix)
	reason := pkgdiscord.ModalValues(data)[inputCantReason]
	h.setStatus(newResponder(s, i.Interaction), messageID, entities.RSVPCannotAttend, reason, "rsvp.cant_recorded")
}

func (h *Handler) setStatus(r *responder, messageID string, status entities.RSVPStatus, reason, okKey string) {
	user := interactionUser(r.i)
	if user == nil {
		return
	}
	if _, err := h.rsvp.SetStatus(context.Background(), messageID, user.ID, status, reason); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.ephemeral(h.msg("errors.rsvp_unknown_event", nil))
			return
		}
		r.ephemeral(h.errorText(err, nil))
		return
	}
	r.ephemeral(h.msg(okKey, nil))
}
