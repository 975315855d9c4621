package output

import (
	"context"

	"leaguebot/internal/domain/entities"
)

// EventRepository stores posted events keyed by the message that carries them.
// FindByMessageID returns domain.ErrNotFound for unknown messages.
type EventRepository interface {
	Create(ctx context.Context, event *entities.EventRecord) error
	FindByMessageID(ctx context.Context, messageID string) (*entities.EventRecord, error)
	Update(ctx context.Context, event *entities.EventRecord) error
}
