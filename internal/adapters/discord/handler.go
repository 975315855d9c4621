package discord

import (
	"leaguebot/internal/ports/input"
	"leaguebot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	events   input.EventCreationUseCase
	rsvp     input.RSVPUseCase
	settings input.SettingsUseCase
	teams    input.TeamUseCase
	t        output.T
	locale   string
}

// NewHandler creates a Handler.
func NewHandler(
	events input.EventCreationUseCase,
	rsvp input.RSVPUseCase,
	settings input.SettingsUseCase,
	teams input.TeamUseCase,
	t output.T,
	locale string,
) *Handler {
	return &Handler{
		events:   events,
		rsvp:     rsvp,
		settings: settings,
		teams:    teams,
		t:        t,
		locale:   locale,
	}
}

func (h *Handler) msg(key string, data map[string]any) string {
	return h.t.T(h.locale, key, data)
}
