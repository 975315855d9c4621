package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaguebot/internal/domain/entities"
)

func TestSettingsDocumentLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bot_settings.json")

	repo, err := NewGuildSettingsRepository(path)
	require.NoError(t, err)
	gs, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, entities.GuildSettings{GuildID: "g1"}, *gs)

	require.NoError(t, repo.Save(ctx, &entities.GuildSettings{GuildID: "g1", DefaultTimezone: "Asia/Tokyo", CoachesChannelID: "c1"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, map[string]string{"defaultTimezone": "Asia/Tokyo", "coachesChannelId": "c1"}, doc["guilds"]["g1"])

	reopened, err := NewGuildSettingsRepository(path)
	require.NoError(t, err)
	gs, err = reopened.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", gs.DefaultTimezone)
	assert.Equal(t, "c1", gs.CoachesChannelID)
}

func TestSettingsReadsExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"guilds":{"g9":{"signChannelId":"s9"}}}`), 0o644))

	repo, err := NewGuildSettingsRepository(path)
	require.NoError(t, err)
	gs, err := repo.Get(context.Background(), "g9")
	require.NoError(t, err)
	assert.Equal(t, "s9", gs.SignChannelID)
}

func TestSettingsRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{nope`), 0o644))
	_, err := NewGuildSettingsRepository(path)
	assert.Error(t, err)
}

func TestTeamsDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "teams.json")

	repo, err := NewTeamRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, &entities.Team{GuildID: "g1", Name: "Reds", LeaderID: "l1", RoleID: "r1"}))
	require.NoError(t, repo.Save(ctx, &entities.Team{GuildID: "g1", Name: "Blues", LeaderID: "l2", RoleID: "r2", Members: []string{"p1", "p2"}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"g1":{
		"Reds":{"leaderId":"l1","roleId":"r1","members":[]},
		"Blues":{"leaderId":"l2","roleId":"r2","members":["p1","p2"]}}}`, string(raw))

	reopened, err := NewTeamRepository(path)
	require.NoError(t, err)
	teams, err := reopened.List(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Blues", teams[0].Name)
	assert.Equal(t, []string{"p1", "p2"}, teams[0].Members)
	assert.Equal(t, []string{}, teams[1].Members)

	teams[0].Members[0] = "mutated"
	again, _ := reopened.List(ctx, "g1")
	assert.Equal(t, "p1", again[0].Members[0])

	require.NoError(t, reopened.Delete(ctx, "g1", "Reds"))
	teams, err = reopened.List(ctx, "g1")
	require.NoError(t, err)
	assert.Len(t, teams, 1)

	empty, err := reopened.List(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMissingDocumentsAreCreated(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "bot_settings.json")
	teamsPath := filepath.Join(dir, "teams.json")

	_, err := NewGuildSettingsRepository(settingsPath)
	require.NoError(t, err)
	_, err = NewTeamRepository(teamsPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"guilds":{}}`, string(raw))
	raw, err = os.ReadFile(teamsPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
