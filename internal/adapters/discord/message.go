package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain"
	"leaguebot/internal/ports/input"
)

// HandleMessage accepts a plain text reply to the location fallback question.
// Messages from users without a delivered question in that channel are ignored.
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Content == "" {
		return
	}
	_, err := h.events.Dispatch(context.Background(), m.Author.ID, input.Input{
		Kind:      input.InputLocationText,
		Value:     m.Content,
		ChannelID: m.ChannelID,
	})
	if errors.Is(err, domain.ErrNoActiveDraft) || errors.Is(err, domain.ErrStepOutOfOrder) {
		return
	}

	reply := h.msg("event.created", nil)
	if err != nil {
		reply = h.errorText(err, nil)
	}
	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		slog.Warn("reply to location message", "channel", m.ChannelID, "user", m.Author.ID, "error", err)
	}
}
