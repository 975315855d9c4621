package discord

import (
	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/ports/input"
)

// HandleTimeSelect handles a choice from the preset time menu.
func (h *Handler) HandleTimeSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.dispatch(newResponder(s, i.Interaction), input.Input{Kind: input.InputPreset, Value: firstValue(i)})
}

// HandleTimezoneSelect handles a choice from the timezone menu.
func (h *Handler) HandleTimezoneSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.dispatch(newResponder(s, i.Interaction), input.Input{Kind: input.InputTimezone, Value: firstValue(i)})
}

func firstValue(i *discordgo.InteractionCreate) string {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
