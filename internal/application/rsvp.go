package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/input"
	"leaguebot/internal/ports/output"
)

// NoOneYet is the placeholder rendered for an empty attendance list.
const NoOneYet = "No one yet"

var _ input.RSVPUseCase = (*RSVPService)(nil)

type RSVPService struct {
	events    output.EventRepository
	settings  output.GuildSettingsRepository
	publisher output.EventPublisher
	notifier  output.Notifier
}

func NewRSVPService(
	events output.EventRepository,
	settings output.GuildSettingsRepository,
	publisher output.EventPublisher,
	notifier output.Notifier,
) *RSVPService {
	return &RSVPService{
		events:    events,
		settings:  settings,
		publisher: publisher,
		notifier:  notifier,
	}
}

// SetStatus records the user's answer on the event posted as messageID and
// re-renders the message. A CannotAttend answer requires a reason and is
// forwarded to the coaches channel in the background.
func (s *RSVPService) SetStatus(ctx context.Context, messageID, userID string, status entities.RSVPStatus, reason string) (*entities.EventRecord, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("rsvp status %q: %w", status, domain.ErrNotFound)
	}
	reason = strings.TrimSpace(reason)
	if status == entities.RSVPCannotAttend && reason == "" {
		return nil, fmt.Errorf("rsvp without reason: %w", domain.ErrMissingReason)
	}

	event, err := s.events.FindByMessageID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	event.Ledger.SetStatus(userID, status, reason)
	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event %s: %w", event.ID, err)
	}

	bestEffort(ctx, "refresh event message", func(ctx context.Context) error {
		return s.publisher.Refresh(ctx, event)
	})

	if status == entities.RSVPCannotAttend {
		s.notifyCoaches(ctx, event, userID, reason)
	}
	slog.DebugContext(ctx, "rsvp recorded", "event", event.ID, "user", userID, "status", status)
	return event, nil
}

func (s *RSVPService) notifyCoaches(ctx context.Context, event *entities.EventRecord, userID, reason string) {
	settings, err := s.settings.Get(ctx, event.GuildID)
	if err != nil {
		slog.WarnContext(ctx, "load guild settings for coaches notice", "guild", event.GuildID, "error", err)
		return
	}
	if settings.CoachesChannelID == "" {
		return
	}
	channelID := settings.CoachesChannelID
	snapshot := *event
	snapshot.Ledger = event.Ledger.Clone()
	bestEffortAsync(ctx, "notify coaches", func(ctx context.Context) error {
		return s.notifier.NotifyAbsence(ctx, channelID, &snapshot, userID, reason)
	})
}

// Render projects the ledger of an event into display lists.
func (s *RSVPService) Render(ctx context.Context, messageID string) (*input.LedgerView, error) {
	event, err := s.events.FindByMessageID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	return RenderLedger(event.Ledger), nil
}

// RenderLedger lists each collection as mentions in answer order, or the
// NoOneYet placeholder when empty.
func RenderLedger(l entities.Ledger) *input.LedgerView {
	cannot := make([]string, len(l.Cannot))
	for i, a := range l.Cannot {
		cannot[i] = a.UserID
	}
	return &input.LedgerView{
		Going:       mentions(l.Going),
		Maybe:       mentions(l.Maybe),
		Cannot:      mentions(cannot),
		GoingCount:  len(l.Going),
		MaybeCount:  len(l.Maybe),
		CannotCount: len(l.Cannot),
	}
}

func mentions(ids []string) []string {
	if len(ids) == 0 {
		return []string{NoOneYet}
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "<@" + id + ">"
	}
	return out
}
