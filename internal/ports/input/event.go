package input

import (
	"context"

	"leaguebot/internal/domain/entities"
	"leaguebot/pkg/tz"
)

// EventRequest carries the options of the /event command.
type EventRequest struct {
	UserID        string
	Username      string
	GuildID       string
	ChannelID     string
	Title         string
	Description   string
	Date          string
	Time          string
	Location      string
	Timezone      string
	DurationHours float64
}

// InputKind identifies which interaction surface produced an Input.
type InputKind int

const (
	// InputPreset is a choice from the preset time menu. Value holds the preset keyword.
	InputPreset InputKind = iota
	// InputCustomDateTime is the two-field date/time form.
	InputCustomDateTime
	// InputTimezone is a choice from the timezone menu. Value holds the zone.
	InputTimezone
	// InputLocation is the location form.
	InputLocation
	// InputLocationText is a plain text reply to the fallback location question.
	InputLocationText
	// InputCompletion is the combined date/time/location form.
	InputCompletion
)

func (k InputKind) String() string {
	switch k {
	case InputPreset:
		return "preset"
	case InputCustomDateTime:
		return "custom_datetime"
	case InputTimezone:
		return "timezone"
	case InputLocation:
		return "location"
	case InputLocationText:
		return "location_text"
	case InputCompletion:
		return "completion"
	}
	return "unknown"
}

// Input is one step of an event-creation conversation.
type Input struct {
	Kind      InputKind
	Value     string
	Date      string
	Time      string
	Location  string
	// ChannelID is where a plain text reply was posted.
	ChannelID string
}

// Prompt is the interaction surface the caller must present next.
type Prompt int

const (
	PromptPresetMenu Prompt = iota
	PromptCustomDateTime
	PromptCompletionForm
	PromptTimezoneMenu
	PromptLocationForm
	PromptFinalized
)

// Outcome is the result of advancing a conversation.
type Outcome struct {
	Prompt Prompt
	Draft  *entities.EventDraft

	// TimezoneOptions is set with PromptTimezoneMenu.
	TimezoneOptions []tz.Option
	// Event is set with PromptFinalized.
	Event *entities.EventRecord
}

type EventCreationUseCase interface {
	Start(ctx context.Context, req EventRequest) (*Outcome, error)
	Dispatch(ctx context.Context, userID string, in Input) (*Outcome, error)
}

// LedgerView is the rendered attendance of an event.
type LedgerView struct {
	Going       []string
	Maybe       []string
	Cannot      []string
	GoingCount  int
	MaybeCount  int
	CannotCount int
}

type RSVPUseCase interface {
	SetStatus(ctx context.Context, messageID, userID string, status entities.RSVPStatus, reason string) (*entities.EventRecord, error)
	Render(ctx context.Context, messageID string) (*LedgerView, error)
}
