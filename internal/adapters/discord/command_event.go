package discord

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"leaguebot/internal/domain"
	"leaguebot/internal/ports/input"
	pkgdiscord "leaguebot/pkg/discord"
	"leaguebot/pkg/timeparse"
)

// Component and modal custom IDs of the event-creation conversation.
const (
	selectEventTime     = "event_select_time"
	selectEventTimezone = "event_select_timezone"
	modalEventDateTime  = "event_modal_date_time"
	modalEventComplete  = "event_complete_modal"
	modalEventLocation  = "event_modal_location"

	inputEventDate     = "event_date_input"
	inputEventTime     = "event_time_input"
	inputEventLocation = "event_location_input"
)

// HandleEvent starts an event-creation conversation.
func (h *Handler) HandleEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := newResponder(s, i.Interaction)
	if !actorOf(i.Interaction).IsAdmin {
		r.ephemeral(h.msg("event.admin_only", nil))
		return
	}

	req, err := eventRequest(i.Interaction)
	if err != nil {
		r.ephemeral(h.errorText(err, nil))
		return
	}
	// Only a fully specified command finalizes straight away; every other
	// outcome is a menu or a modal, which must be the first response.
	if req.Date != "" && req.Time != "" && req.Location != "" {
		r.deferReply(true)
	}

	outcome, err := h.events.Start(context.Background(), req)
	if err != nil {
		r.ephemeral(h.errorText(err, nil))
		return
	}
	h.present(r, outcome)
}

func eventRequest(i *discordgo.Interaction) (input.EventRequest, error) {
	opts := optionMap(i.ApplicationCommandData().Options)
	req := input.EventRequest{
		Username:    displayName(i),
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		Title:       stringOption(opts, "title"),
		Description: stringOption(opts, "description"),
		Date:        strings.TrimSpace(stringOption(opts, "date")),
		Time:        strings.TrimSpace(stringOption(opts, "time")),
		Location:    strings.TrimSpace(stringOption(opts, "location")),
		Timezone:    stringOption(opts, "timezone"),
	}
	if u := interactionUser(i); u != nil {
		req.UserID = u.ID
	}
	if raw := stringOption(opts, "duration"); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, domain.ErrInvalidDuration
		}
		req.DurationHours = hours
	}
	return req, nil
}

// present renders the next step of a conversation.
func (h *Handler) present(r *responder, outcome *input.Outcome) {
	switch outcome.Prompt {
	case input.PromptPresetMenu:
		r.send(h.presetMenu())
	case input.PromptCustomDateTime:
		r.open(h.dateTimeModal())
	case input.PromptCompletionForm:
		r.open(h.completionModal(outcome))
	case input.PromptTimezoneMenu:
		r.send(h.timezoneMenu(outcome))
	case input.PromptLocationForm:
		r.open(h.locationModal())
	case input.PromptFinalized:
		r.ephemeral(h.msg("event.created", nil))
	}
}

func (h *Handler) presetMenu() *discordgo.InteractionResponseData {
	options := make([]discordgo.SelectMenuOption, 0, len(timeparse.Presets))
	for _, p := range timeparse.Presets {
		options = append(options, discordgo.SelectMenuOption{Label: p.Label, Value: p.Value})
	}
	return &discordgo.InteractionResponseData{
		Content: h.msg("event.select_time_prompt", nil),
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{CustomID: selectEventTime, Placeholder: h.msg("event.select_time_placeholder", nil), Options: options},
			}},
		},
	}
}

func (h *Handler) timezoneMenu(outcome *input.Outcome) *discordgo.InteractionResponseData {
	options := make([]discordgo.SelectMenuOption, 0, len(outcome.TimezoneOptions))
	for idx, o := range outcome.TimezoneOptions {
		options = append(options, discordgo.SelectMenuOption{Label: o.Label, Value: o.Value, Default: idx == 0})
	}
	return &discordgo.InteractionResponseData{
		Content: h.msg("event.select_timezone_prompt", nil),
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{CustomID: selectEventTimezone, Placeholder: h.msg("event.select_timezone_placeholder", nil), Options: options},
			}},
		},
	}
}

func (h *Handler) dateInput(value string, required bool) discordgo.TextInput {
	return discordgo.TextInput{
		CustomID:    inputEventDate,
		Label:       h.msg("event.date_label", nil),
		Style:       discordgo.TextInputShort,
		Placeholder: h.msg("event.date_placeholder", nil),
		Value:       value,
		Required:    required,
	}
}

func (h *Handler) timeInput(value string, required bool) discordgo.TextInput {
	return discordgo.TextInput{
		CustomID:    inputEventTime,
		Label:       h.msg("event.time_label", nil),
		Style:       discordgo.TextInputShort,
		Placeholder: h.msg("event.time_placeholder", nil),
		Value:       value,
		Required:    required,
	}
}

func (h *Handler) locationInput(value string, required bool) discordgo.TextInput {
	return discordgo.TextInput{
		CustomID:    inputEventLocation,
		Label:       h.msg("event.location_label", nil),
		Style:       discordgo.TextInputShort,
		Placeholder: h.msg("event.location_placeholder", nil),
		Value:       value,
		Required:    required,
	}
}

func (h *Handler) dateTimeModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: modalEventDateTime,
		Title:    h.msg("event.datetime_title", nil),
		Components: []discordgo.MessageComponent{
			pkgdiscord.TextRow(h.dateInput("", true)),
			pkgdiscord.TextRow(h.timeInput("", true)),
		},
	}
}

// completionModal asks for whatever /event left out, prefilled with what it gave.
func (h *Handler) completionModal(outcome *input.Outcome) *discordgo.InteractionResponseData {
	d := outcome.Draft
	return &discordgo.InteractionResponseData{
		CustomID: modalEventComplete,
		Title:    h.msg("event.complete_title", nil),
		Components: []discordgo.MessageComponent{
			pkgdiscord.TextRow(h.dateInput(d.PrefillDate, true)),
			pkgdiscord.TextRow(h.timeInput(d.PrefillTime, true)),
			pkgdiscord.TextRow(h.locationInput(d.Location, false)),
		},
	}
}

func (h *Handler) locationModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: modalEventLocation,
		Title:    h.msg("event.location_title", nil),
		Components: []discordgo.MessageComponent{
			pkgdiscord.TextRow(h.locationInput("", true)),
		},
	}
}

// dispatch advances the caller's conversation and presents the result.
func (h *Handler) dispatch(r *responder, in input.Input) {
	userID := ""
	if u := interactionUser(r.i); u != nil {
		userID = u.ID
	}
	outcome, err := h.events.Dispatch(context.Background(), userID, in)
	if err != nil {
		r.ephemeral(h.errorText(err, nil))
		return
	}
	h.present(r, outcome)
}
