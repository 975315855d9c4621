package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"leaguebot/internal/domain/entities"
)

var errBoom = errors.New("boom")

type fakeSettings struct {
	mu     sync.Mutex
	guilds map[string]entities.GuildSettings
	saves  int
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{guilds: make(map[string]entities.GuildSettings)}
}

func (f *fakeSettings) Get(_ context.Context, guildID string) (*entities.GuildSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gs, ok := f.guilds[guildID]
	if !ok {
		gs = entities.GuildSettings{GuildID: guildID}
	}
	return &gs, nil
}

func (f *fakeSettings) Save(_ context.Context, gs *entities.GuildSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.guilds[gs.GuildID] = *gs
	return nil
}

type fakeTeams struct {
	mu    sync.Mutex
	teams map[string]map[string]entities.Team
}

func newFakeTeams() *fakeTeams {
	return &fakeTeams{teams: make(map[string]map[string]entities.Team)}
}

func (f *fakeTeams) List(_ context.Context, guildID string) ([]entities.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Team, 0, len(f.teams[guildID]))
	for _, t := range f.teams[guildID] {
		t.Members = slices.Clone(t.Members)
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTeams) Save(_ context.Context, team *entities.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.teams[team.GuildID] == nil {
		f.teams[team.GuildID] = make(map[string]entities.Team)
	}
	t := *team
	t.Members = slices.Clone(team.Members)
	f.teams[team.GuildID][team.Name] = t
	return nil
}

func (f *fakeTeams) Delete(_ context.Context, guildID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.teams[guildID], name)
	return nil
}

func (f *fakeTeams) get(guildID, name string) entities.Team {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teams[guildID][name]
}

type fakePublisher struct {
	mu         sync.Mutex
	published  []entities.EventRecord
	refreshes  int
	publishErr error
	refreshErr error
}

func (f *fakePublisher) Publish(_ context.Context, event *entities.EventRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return "", f.publishErr
	}
	f.published = append(f.published, *event)
	return fmt.Sprintf("msg-%d", len(f.published)), nil
}

func (f *fakePublisher) Refresh(_ context.Context, _ *entities.EventRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return f.refreshErr
}

type fakeScheduler struct {
	err error
}

func (f *fakeScheduler) CreateScheduledEvent(_ context.Context, event *entities.EventRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://discord.com/events/" + event.GuildID + "/1", nil
}

type fakePrompter struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakePrompter) PromptLocation(_ context.Context, userID, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, userID)
	if f.err != nil {
		return "", f.err
	}
	return "dm-" + userID, nil
}

func (f *fakePrompter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type absence struct {
	channelID, eventTitle, userID, reason string
}

type signing struct {
	channelID, team, userID string
}

type fakeNotifier struct {
	absences chan absence
	signings chan signing
	err      error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{absences: make(chan absence, 8), signings: make(chan signing, 8)}
}

func (f *fakeNotifier) NotifyAbsence(_ context.Context, channelID string, event *entities.EventRecord, userID, reason string) error {
	f.absences <- absence{channelID, event.Title, userID, reason}
	return f.err
}

func (f *fakeNotifier) NotifySigning(_ context.Context, channelID string, team *entities.Team, userID string) error {
	f.signings <- signing{channelID, team.Name, userID}
	return f.err
}

type roleChange struct {
	add                     bool
	guildID, userID, roleID string
}

type fakeRoles struct {
	mu      sync.Mutex
	changes []roleChange
	err     error
}

func (f *fakeRoles) AddRole(_ context.Context, guildID, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, roleChange{true, guildID, userID, roleID})
	return f.err
}

func (f *fakeRoles) RemoveRole(_ context.Context, guildID, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, roleChange{false, guildID, userID, roleID})
	return f.err
}
