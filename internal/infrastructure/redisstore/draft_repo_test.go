package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
)

func TestDecodeMissingDraft(t *testing.T) {
	_, err := decode(nil, redis.Nil)
	assert.ErrorIs(t, err, domain.ErrNoActiveDraft)
}

func TestDecodeDraft(t *testing.T) {
	d, err := decode([]byte(`{"userId":"u1","title":"Scrim","timezone":"UTC","durationHours":1.5,"state":2}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "Scrim", d.Title)
	assert.Equal(t, 1.5, d.DurationHours)
	assert.Equal(t, entities.StateAwaitingLocation, d.State)
}

// TestDraftRepositoryRedis runs against a live server when REDIS_URL is set.
func TestDraftRepositoryRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := NewClient(ctx, url)
	require.NoError(t, err)
	defer client.Close()

	repo := NewDraftRepository(client)
	userID := "test-" + t.Name()
	t.Cleanup(func() { _ = repo.Delete(ctx, userID) })

	require.NoError(t, repo.Save(ctx, &entities.EventDraft{UserID: userID, Title: "Scrim", Timezone: "UTC"}))
	d, err := repo.Find(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Scrim", d.Title)

	ttl, err := client.TTL(ctx, key(userID)).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	loc := "Main VC"
	d, err = repo.Merge(ctx, userID, entities.DraftPatch{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Main VC", d.Location)
	assert.Equal(t, "Scrim", d.Title)

	_, err = repo.Take(ctx, userID)
	require.NoError(t, err)
	_, err = repo.Take(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrNoActiveDraft)

	_, err = repo.Merge(ctx, userID, entities.DraftPatch{Location: &loc})
	assert.ErrorIs(t, err, domain.ErrNoActiveDraft)
	exists, err := client.Exists(ctx, key(userID)).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
