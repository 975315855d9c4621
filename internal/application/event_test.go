package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/infrastructure/memory"
	"leaguebot/internal/ports/input"
	"leaguebot/pkg/timeparse"
)

var fixedNow = time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)

type eventFixture struct {
	svc       *EventCreationService
	store     *ConversationStore
	events    *memory.EventRepository
	settings  *fakeSettings
	publisher *fakePublisher
	scheduler *fakeScheduler
	prompter  *fakePrompter
}

func newEventFixture(delay time.Duration) *eventFixture {
	f := &eventFixture{
		events:    memory.NewEventRepository(),
		settings:  newFakeSettings(),
		publisher: &fakePublisher{},
		scheduler: &fakeScheduler{},
		prompter:  &fakePrompter{},
	}
	now := func() time.Time { return fixedNow }
	f.store = NewConversationStore(memory.NewDraftRepository(), now)
	f.svc = NewEventCreationService(f.store, timeparse.NewResolver(), f.settings, f.events,
		f.publisher, f.scheduler, f.prompter,
		EventCreationConfig{DefaultTimezone: "UTC", FallbackDelay: delay, Now: now})
	return f
}

func request(title string) input.EventRequest {
	return input.EventRequest{UserID: "u1", Username: "coach", GuildID: "g1", ChannelID: "c1", Title: title}
}

func TestStartDirectFinalization(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)

	req := request("Scrim")
	req.Date, req.Time, req.Timezone, req.Location, req.DurationHours = "2025-08-01", "18:00", "UTC", "Main VC", 2

	out, err := f.svc.Start(ctx, req)
	require.NoError(t, err)
	require.Equal(t, input.PromptFinalized, out.Prompt)

	ev := out.Event
	require.NotNil(t, ev)
	assert.True(t, time.Date(2025, time.August, 1, 18, 0, 0, 0, time.UTC).Equal(ev.StartsAt))
	assert.True(t, ev.EndsAt.Sub(ev.StartsAt) == 2*time.Hour)
	assert.Equal(t, "<t:1754071200:F>\nUTC (UTC)", ev.DisplayTime)
	assert.Equal(t, 2.0, ev.DurationHours)
	assert.Equal(t, "Main VC", ev.Location)
	assert.Equal(t, "msg-1", ev.MessageID)
	assert.NotEmpty(t, ev.ID)
	assert.Contains(t, ev.CalendarLink, "dates=20250801T180000Z%2F20250801T200000Z")
	assert.Equal(t, "https://discord.com/events/g1/1", ev.ScheduledEventURL)

	stored, err := f.events.FindByMessageID(ctx, "msg-1")
	require.NoError(t, err)
	view := RenderLedger(stored.Ledger)
	assert.Zero(t, view.GoingCount)
	assert.Zero(t, view.MaybeCount)
	assert.Zero(t, view.CannotCount)

	_, err = f.store.Get(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNoActiveDraft)
}

func TestPresetConversation(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)

	out, err := f.svc.Start(ctx, request("Practice"))
	require.NoError(t, err)
	assert.Equal(t, input.PromptPresetMenu, out.Prompt)
	assert.Equal(t, entities.StateAwaitingTimeAndLocation, out.Draft.State)
	assert.Equal(t, DefaultDuration, out.Draft.DurationHours)

	out, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetIn1Hour})
	require.NoError(t, err)
	require.Equal(t, input.PromptTimezoneMenu, out.Prompt)
	assert.Equal(t, entities.StateAwaitingTimezone, out.Draft.State)
	require.NotEmpty(t, out.TimezoneOptions)
	assert.Equal(t, "UTC", out.TimezoneOptions[0].Value)
	assert.Equal(t, "UTC (12:00)", out.TimezoneOptions[0].Label)

	out, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, input.PromptLocationForm, out.Prompt)
	assert.Equal(t, entities.StateAwaitingLocation, out.Draft.State)
	_, armed := f.store.PendingPrompt("u1")
	assert.True(t, armed)

	out, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocation, Value: "Stadium"})
	require.NoError(t, err)
	require.Equal(t, input.PromptFinalized, out.Prompt)
	assert.True(t, fixedNow.Add(time.Hour).Equal(out.Event.StartsAt))
	assert.Equal(t, "Stadium", out.Event.Location)
	assert.Equal(t, "Practice", out.Event.Title)

	_, armed = f.store.PendingPrompt("u1")
	assert.False(t, armed)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocation, Value: "Again"})
	assert.ErrorIs(t, err, domain.ErrNoActiveDraft)
	assert.Len(t, f.publisher.published, 1)
}

func TestTimezoneMenuUsesGuildDefault(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)
	f.settings.guilds["g1"] = entities.GuildSettings{GuildID: "g1", DefaultTimezone: "Asia/Tokyo"}

	out, err := f.svc.Start(ctx, request("Practice"))
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", out.Draft.Timezone)

	out, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetTomorrow})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", out.TimezoneOptions[0].Value)
	assert.Equal(t, "UTC", out.TimezoneOptions[1].Value)
}

func TestCustomDateTimeConversation(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)
	_, err := f.svc.Start(ctx, request("Practice"))
	require.NoError(t, err)

	out, err := f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetCustom})
	require.NoError(t, err)
	assert.Equal(t, input.PromptCustomDateTime, out.Prompt)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputCustomDateTime, Date: "2025-07-10"})
	assert.ErrorIs(t, err, domain.ErrMissingDateTime)

	out, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputCustomDateTime, Date: "2025-07-10", Time: "20:30"})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-10 20:30", out.Draft.WhenString)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "Europe/London"})
	require.NoError(t, err)
	out, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocation, Value: "  "})
	require.NoError(t, err)
	assert.True(t, time.Date(2025, time.July, 10, 19, 30, 0, 0, time.UTC).Equal(out.Event.StartsAt))
	assert.Equal(t, LocationPlaceholder, out.Event.Location)
	assert.Contains(t, out.Event.DisplayTime, "BST (Europe/London)")
}

func TestCompletionForm(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)

	req := request("Scrim")
	req.Date = "2025-08-01"
	out, err := f.svc.Start(ctx, req)
	require.NoError(t, err)
	require.Equal(t, input.PromptCompletionForm, out.Prompt)
	assert.Equal(t, "2025-08-01", out.Draft.PrefillDate)
	assert.Empty(t, out.Draft.PrefillTime)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputCompletion, Date: "2025-08-01"})
	assert.ErrorIs(t, err, domain.ErrMissingDateTime)

	out, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputCompletion, Date: "2025-08-01", Time: "18:00", Location: "Main VC"})
	require.NoError(t, err)
	require.Equal(t, input.PromptFinalized, out.Prompt)
	assert.Equal(t, "Main VC", out.Event.Location)
	assert.Equal(t, "UTC", out.Event.Timezone)
}

func TestFinalizationErrorsDropDraft(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want error
	}{
		{"past", "2025-06-01", "18:00", domain.ErrPastTime},
		{"unparseable", "someday", "whenever", domain.ErrUnparseable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newEventFixture(time.Hour)
			req := request("Scrim")
			req.Date, req.Time, req.Location = tt.date, tt.time, "Main VC"

			_, err := f.svc.Start(ctx, req)
			assert.ErrorIs(t, err, tt.want)

			_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocation, Value: "x"})
			assert.ErrorIs(t, err, domain.ErrNoActiveDraft)
			assert.Empty(t, f.publisher.published)
		})
	}
}

func TestDispatchOutOfOrder(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)

	_, err := f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetTonight})
	assert.ErrorIs(t, err, domain.ErrNoActiveDraft)

	_, err = f.svc.Start(ctx, request("Practice"))
	require.NoError(t, err)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "UTC"})
	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocation, Value: "Stadium"})
	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: "yesterday"})
	assert.ErrorIs(t, err, domain.ErrUnparseable)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetTonight})
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "Mars/Olympus"})
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputCompletion, Date: "2025-08-01", Time: "18:00"})
	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)
}

func TestStartValidation(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)

	req := request("Scrim")
	req.DurationHours = 5
	_, err := f.svc.Start(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	req = request("Scrim")
	req.Timezone = "Europe/Paris"
	_, err = f.svc.Start(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
}

func TestStartClobbersPreviousDraft(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(30 * time.Millisecond)

	_, err := f.svc.Start(ctx, request("First"))
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetTomorrow})
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "UTC"})
	require.NoError(t, err)

	out, err := f.svc.Start(ctx, request("Second"))
	require.NoError(t, err)
	assert.Equal(t, "Second", out.Draft.Title)

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, f.prompter.count())
}

func TestLocationFallback(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(10 * time.Millisecond)

	_, err := f.svc.Start(ctx, request("Practice"))
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetTomorrow})
	require.NoError(t, err)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocationText, Value: "Too early", ChannelID: "dm-u1"})
	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "UTC"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		p, ok := f.store.PendingPrompt("u1")
		return ok && p.Delivered()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, f.prompter.count())

	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocationText, Value: "Pitch 2", ChannelID: "elsewhere"})
	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)

	out, err := f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocationText, Value: "Pitch 2", ChannelID: "dm-u1"})
	require.NoError(t, err)
	assert.Equal(t, "Pitch 2", out.Event.Location)
	_, armed := f.store.PendingPrompt("u1")
	assert.False(t, armed)
}

func TestLocationFormCancelsFallback(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(40 * time.Millisecond)

	_, err := f.svc.Start(ctx, request("Practice"))
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetTomorrow})
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "UTC"})
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputLocation, Value: "Stadium"})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, f.prompter.count())
}

func TestTimezoneRechoiceRearmsOnce(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(30 * time.Millisecond)

	_, err := f.svc.Start(ctx, request("Practice"))
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputPreset, Value: timeparse.PresetTomorrow})
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "UTC"})
	require.NoError(t, err)
	out, err := f.svc.Dispatch(ctx, "u1", input.Input{Kind: input.InputTimezone, Value: "Asia/Dubai"})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Dubai", out.Draft.Timezone)

	require.Eventually(t, func() bool { return f.prompter.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, f.prompter.count())
}

func TestScheduledEventFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)
	f.scheduler.err = errBoom

	req := request("Scrim")
	req.Date, req.Time, req.Location = "2025-08-01", "18:00", "Main VC"
	out, err := f.svc.Start(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, out.Event.ScheduledEventURL)
	assert.NotEmpty(t, out.Event.CalendarLink)
}

func TestPublishFailureIsReported(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture(time.Hour)
	f.publisher.publishErr = errBoom

	req := request("Scrim")
	req.Date, req.Time, req.Location = "2025-08-01", "18:00", "Main VC"
	_, err := f.svc.Start(ctx, req)
	assert.ErrorIs(t, err, errBoom)
}
