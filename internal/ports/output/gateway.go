package output

import (
	"context"

	"leaguebot/internal/domain/entities"
)

// EventPublisher posts the event message with its RSVP buttons and returns the message ID.
type EventPublisher interface {
	Publish(ctx context.Context, event *entities.EventRecord) (string, error)
	// Refresh re-renders an already posted event after its ledger changed.
	Refresh(ctx context.Context, event *entities.EventRecord) error
}

// ScheduledEventCreator creates the guild's native scheduled event and returns its URL.
type ScheduledEventCreator interface {
	CreateScheduledEvent(ctx context.Context, event *entities.EventRecord) (string, error)
}

// LocationPrompter asks a user for the event location in plain text. It tries a
// direct message first and returns the channel the question landed in.
type LocationPrompter interface {
	PromptLocation(ctx context.Context, userID, channelID string) (string, error)
}

// Notifier posts informational messages to configured guild channels.
type Notifier interface {
	NotifyAbsence(ctx context.Context, channelID string, event *entities.EventRecord, userID, reason string) error
	NotifySigning(ctx context.Context, channelID string, team *entities.Team, userID string) error
}

// RoleManager grants and revokes guild roles.
type RoleManager interface {
	AddRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error
}
