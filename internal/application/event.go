package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/input"
	"leaguebot/internal/ports/output"
	"leaguebot/pkg/calendar"
	"leaguebot/pkg/timeparse"
	"leaguebot/pkg/tz"
)

// DefaultDuration is used when /event names no duration.
const DefaultDuration = 2.0

// AllowedDurations are the event lengths offered by /event, in hours.
var AllowedDurations = []float64{1, 1.5, 2, 2.5, 3, 4}

// LocationPlaceholder replaces an empty location.
const LocationPlaceholder = "TBA"

var _ input.EventCreationUseCase = (*EventCreationService)(nil)

type EventCreationConfig struct {
	DefaultTimezone string
	FallbackDelay   time.Duration
	Now             func() time.Time
}

// EventCreationService drives the event-creation conversation of each user.
type EventCreationService struct {
	store     *ConversationStore
	resolver  *timeparse.Resolver
	settings  output.GuildSettingsRepository
	events    output.EventRepository
	publisher output.EventPublisher
	scheduler output.ScheduledEventCreator
	prompter  output.LocationPrompter

	defaultTimezone string
	fallbackDelay   time.Duration
	now             func() time.Time
}

func NewEventCreationService(
	store *ConversationStore,
	resolver *timeparse.Resolver,
	settings output.GuildSettingsRepository,
	events output.EventRepository,
	publisher output.EventPublisher,
	scheduler output.ScheduledEventCreator,
	prompter output.LocationPrompter,
	cfg EventCreationConfig,
) *EventCreationService {
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = tz.Default
	}
	if cfg.FallbackDelay <= 0 {
		cfg.FallbackDelay = 15 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &EventCreationService{
		store:           store,
		resolver:        resolver,
		settings:        settings,
		events:          events,
		publisher:       publisher,
		scheduler:       scheduler,
		prompter:        prompter,
		defaultTimezone: cfg.DefaultTimezone,
		fallbackDelay:   cfg.FallbackDelay,
		now:             cfg.Now,
	}
}

// Start opens a conversation for /event. Depending on which of date, time and
// location were given it finalizes at once, asks for the rest in one form, or
// shows the preset menu. A previous draft of the same user is replaced.
func (s *EventCreationService) Start(ctx context.Context, req input.EventRequest) (*input.Outcome, error) {
	duration, err := validateDuration(req.DurationHours)
	if err != nil {
		return nil, err
	}
	zone, err := s.effectiveTimezone(ctx, req.GuildID, strings.TrimSpace(req.Timezone))
	if err != nil {
		return nil, err
	}

	date := strings.TrimSpace(req.Date)
	clock := strings.TrimSpace(req.Time)
	location := strings.TrimSpace(req.Location)

	draft := &entities.EventDraft{
		UserID:        req.UserID,
		Username:      req.Username,
		GuildID:       req.GuildID,
		ChannelID:     req.ChannelID,
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Timezone:      zone,
		Location:      location,
		DurationHours: duration,
		State:         entities.StateAwaitingTimeAndLocation,
		PrefillDate:   date,
		PrefillTime:   clock,
	}

	switch {
	case date != "" && clock != "" && location != "":
		draft.WhenString = date + " " + clock
		if err := s.store.Start(ctx, draft); err != nil {
			return nil, fmt.Errorf("start draft: %w", err)
		}
		return s.finalize(ctx, req.UserID)
	case date != "" || clock != "" || location != "":
		if err := s.store.Start(ctx, draft); err != nil {
			return nil, fmt.Errorf("start draft: %w", err)
		}
		return &input.Outcome{Prompt: input.PromptCompletionForm, Draft: draft}, nil
	default:
		if err := s.store.Start(ctx, draft); err != nil {
			return nil, fmt.Errorf("start draft: %w", err)
		}
		return &input.Outcome{Prompt: input.PromptPresetMenu, Draft: draft}, nil
	}
}

// Dispatch applies one interaction to the user's draft and returns what to
// present next.
func (s *EventCreationService) Dispatch(ctx context.Context, userID string, in input.Input) (*input.Outcome, error) {
	draft, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.State == entities.StateFinalized {
		return nil, domain.ErrNoActiveDraft
	}

	switch in.Kind {
	case input.InputPreset:
		if in.Value == timeparse.PresetCustom {
			return &input.Outcome{Prompt: input.PromptCustomDateTime, Draft: draft}, nil
		}
		if !timeparse.IsPreset(in.Value) {
			return nil, domain.ErrUnparseable
		}
		return s.captureTime(ctx, userID, in.Value)

	case input.InputCustomDateTime:
		date, clock := strings.TrimSpace(in.Date), strings.TrimSpace(in.Time)
		if date == "" || clock == "" {
			return nil, domain.ErrMissingDateTime
		}
		return s.captureTime(ctx, userID, date+" "+clock)

	case input.InputTimezone:
		if draft.WhenString == "" || draft.State == entities.StateAwaitingTimeAndLocation {
			return nil, domain.ErrStepOutOfOrder
		}
		if !tz.IsKnown(in.Value) {
			return nil, domain.ErrInvalidTimezone
		}
		return s.captureTimezone(ctx, draft, in.Value)

	case input.InputLocation:
		if draft.State != entities.StateAwaitingLocation {
			return nil, domain.ErrStepOutOfOrder
		}
		return s.captureLocation(ctx, userID, in.Value)

	case input.InputLocationText:
		prompt, ok := s.store.PendingPrompt(userID)
		if draft.State != entities.StateAwaitingLocation || !ok || !prompt.Delivered() || prompt.ReplyChannelID != in.ChannelID {
			return nil, domain.ErrStepOutOfOrder
		}
		return s.captureLocation(ctx, userID, in.Value)

	case input.InputCompletion:
		if draft.State != entities.StateAwaitingTimeAndLocation {
			return nil, domain.ErrStepOutOfOrder
		}
		date, clock := strings.TrimSpace(in.Date), strings.TrimSpace(in.Time)
		if date == "" || clock == "" {
			return nil, domain.ErrMissingDateTime
		}
		when := date + " " + clock
		location := locationOrPlaceholder(in.Location)
		if _, err := s.store.Merge(ctx, userID, entities.DraftPatch{WhenString: &when, Location: &location}); err != nil {
			return nil, err
		}
		return s.finalize(ctx, userID)
	}
	return nil, fmt.Errorf("dispatch %s: %w", in.Kind, domain.ErrStepOutOfOrder)
}

func (s *EventCreationService) captureTime(ctx context.Context, userID, when string) (*input.Outcome, error) {
	// Choosing a time again after the timezone step restarts from the timezone menu.
	s.store.CancelFallback(userID)
	state := entities.StateAwaitingTimezone
	location := ""
	draft, err := s.store.Merge(ctx, userID, entities.DraftPatch{WhenString: &when, Location: &location, State: &state})
	if err != nil {
		return nil, err
	}
	return &input.Outcome{
		Prompt:          input.PromptTimezoneMenu,
		Draft:           draft,
		TimezoneOptions: tz.Options(draft.Timezone, s.now()),
	}, nil
}

func (s *EventCreationService) captureTimezone(ctx context.Context, draft *entities.EventDraft, zone string) (*input.Outcome, error) {
	state := entities.StateAwaitingLocation
	draft, err := s.store.Merge(ctx, draft.UserID, entities.DraftPatch{Timezone: &zone, State: &state})
	if err != nil {
		return nil, err
	}
	userID, channelID := draft.UserID, draft.ChannelID
	s.store.ArmFallback(userID, channelID, s.fallbackDelay, func() {
		s.promptLocation(userID, channelID)
	})
	return &input.Outcome{Prompt: input.PromptLocationForm, Draft: draft}, nil
}

func (s *EventCreationService) captureLocation(ctx context.Context, userID, location string) (*input.Outcome, error) {
	s.store.CancelFallback(userID)
	location = locationOrPlaceholder(location)
	if _, err := s.store.Merge(ctx, userID, entities.DraftPatch{Location: &location}); err != nil {
		return nil, err
	}
	return s.finalize(ctx, userID)
}

// promptLocation runs when the location fallback fires.
func (s *EventCreationService) promptLocation(userID, channelID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	draft, err := s.store.Get(ctx, userID)
	if err != nil || draft.Location != "" || draft.State != entities.StateAwaitingLocation {
		return
	}
	replyChannelID, err := s.prompter.PromptLocation(ctx, userID, channelID)
	if err != nil {
		slog.Warn("location fallback prompt failed", "user", userID, "channel", channelID, "error", err)
		return
	}
	s.store.MarkPromptDelivered(userID, replyChannelID)
}

// finalize takes the draft out of the store and turns it into a posted event.
// Validation failures leave no draft behind.
func (s *EventCreationService) finalize(ctx context.Context, userID string) (*input.Outcome, error) {
	draft, err := s.store.Complete(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !draft.Complete() {
		return nil, fmt.Errorf("finalize draft of %s: %w", userID, domain.ErrMissingDateTime)
	}

	now := s.now()
	start, err := s.resolver.Resolve(draft.WhenString, draft.Timezone, now)
	if err != nil {
		return nil, err
	}
	if err := timeparse.ValidateFuture(start, now); err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(draft.DurationHours * float64(time.Hour)))

	record := &entities.EventRecord{
		ID:            uuid.NewString(),
		GuildID:       draft.GuildID,
		ChannelID:     draft.ChannelID,
		CreatorID:     draft.UserID,
		CreatorName:   draft.Username,
		Title:         draft.Title,
		Description:   draft.Description,
		StartsAt:      start,
		EndsAt:        end,
		Timezone:      draft.Timezone,
		DisplayTime:   timeparse.Display(start),
		DurationHours: draft.DurationHours,
		Location:      draft.Location,
		CalendarLink:  calendar.Link(draft.Title, draft.Description, start, end),
		CreatedAt:     now,
	}

	bestEffort(ctx, "create scheduled event", func(ctx context.Context) error {
		url, err := s.scheduler.CreateScheduledEvent(ctx, record)
		if err != nil {
			return err
		}
		record.ScheduledEventURL = url
		return nil
	})

	messageID, err := s.publisher.Publish(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}
	record.MessageID = messageID
	if err := s.events.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store event: %w", err)
	}

	draft.State = entities.StateFinalized
	slog.InfoContext(ctx, "event created", "event", record.ID, "message", messageID, "guild", record.GuildID, "user", userID)
	return &input.Outcome{Prompt: input.PromptFinalized, Draft: draft, Event: record}, nil
}

// effectiveTimezone picks the explicit zone, else the guild default, else the
// configured default.
func (s *EventCreationService) effectiveTimezone(ctx context.Context, guildID, explicit string) (string, error) {
	if explicit != "" {
		if !tz.IsKnown(explicit) {
			return "", domain.ErrInvalidTimezone
		}
		return explicit, nil
	}
	settings, err := s.settings.Get(ctx, guildID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("load guild settings: %w", err)
	}
	if settings != nil && tz.IsKnown(settings.DefaultTimezone) {
		return settings.DefaultTimezone, nil
	}
	return s.defaultTimezone, nil
}

func validateDuration(hours float64) (float64, error) {
	if hours == 0 {
		return DefaultDuration, nil
	}
	for _, d := range AllowedDurations {
		if d == hours {
			return hours, nil
		}
	}
	return 0, domain.ErrInvalidDuration
}

func locationOrPlaceholder(location string) string {
	if location = strings.TrimSpace(location); location == "" {
		return LocationPlaceholder
	}
	return location
}
