package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleModalSubmit routes submitted modals by CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch {
	case data.CustomID == modalEventDateTime:
		h.handleDateTimeModal(s, i, data)
	case data.CustomID == modalEventComplete:
		h.handleCompletionModal(s, i, data)
	case data.CustomID == modalEventLocation:
		h.handleLocationModal(s, i, data)
	case strings.HasPrefix(data.CustomID, modalCantReasonPrefix):
		h.handleCantReasonModal(s, i, data)
	default:
		// Unknown modal: ignore.
	}
}
