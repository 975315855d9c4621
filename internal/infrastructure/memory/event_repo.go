package memory

import (
	"context"
	"fmt"
	"sync"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository holds posted events and their attendance ledgers.
type EventRepository struct {
	mu     sync.Mutex
	events map[string]entities.EventRecord
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[string]entities.EventRecord)}
}

func (r *EventRepository) Create(_ context.Context, event *entities.EventRecord) error {
	if event.MessageID == "" {
		return fmt.Errorf("create event %s: missing message id", event.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.MessageID] = clone(event)
	return nil
}

func (r *EventRepository) FindByMessageID(_ context.Context, messageID string) (*entities.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[messageID]
	if !ok {
		return nil, fmt.Errorf("event for message %s: %w", messageID, domain.ErrNotFound)
	}
	e = clone(&e)
	return &e, nil
}

func (r *EventRepository) Update(_ context.Context, event *entities.EventRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.MessageID]; !ok {
		return fmt.Errorf("update event for message %s: %w", event.MessageID, domain.ErrNotFound)
	}
	r.events[event.MessageID] = clone(event)
	return nil
}

func clone(e *entities.EventRecord) entities.EventRecord {
	c := *e
	c.Ledger = e.Ledger.Clone()
	return c
}
