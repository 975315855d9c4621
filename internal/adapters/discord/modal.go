package discord

import (
	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/ports/input"
	pkgdiscord "leaguebot/pkg/discord"
)

func (h *Handler) handleDateTimeModal(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ModalValues(data)
	h.dispatch(newResponder(s, i.Interaction), input.Input{
		Kind: input.InputCustomDateTime,
		Date: values[inputEventDate],
		Time: values[inputEventTime],
	})
}

func (h *Handler) handleCompletionModal(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ModalValues(data)
	r := newResponder(s, i.Interaction)
	r.deferReply(true)
	h.dispatch(r, input.Input{
		Kind:     input.InputCompletion,
		Date:     values[inputEventDate],
		Time:     values[inputEventTime],
		Location: values[inputEventLocation],
	})
}

func (h *Handler) handleLocationModal(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ModalValues(data)
	r := newResponder(s, i.Interaction)
	r.deferReply(true)
	h.dispatch(r, input.Input{Kind: input.InputLocation, Value: values[inputEventLocation]})
}
