// Package redisstore keeps event drafts in Redis so that a conversation can
// survive a bot restart.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

// DraftTTL bounds how long an abandoned draft is kept.
const DraftTTL = 12 * time.Hour

const keyPrefix = "leaguebot:draft:"

var _ output.DraftRepository = (*DraftRepository)(nil)

type DraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient connects to the Redis instance at url and checks it is reachable.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func NewDraftRepository(client *redis.Client) *DraftRepository {
	return &DraftRepository{client: client, ttl: DraftTTL}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (r *DraftRepository) Save(ctx context.Context, draft *entities.EventDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := r.client.Set(ctx, key(draft.UserID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (r *DraftRepository) Find(ctx context.Context, userID string) (*entities.EventDraft, error) {
	return decode(r.client.Get(ctx, key(userID)).Bytes())
}

// maxMergeAttempts bounds optimistic retries when the draft changes under a merge.
const maxMergeAttempts = 5

// Merge watches the draft key so that a concurrent Take or Save aborts the
// write instead of resurrecting or clobbering the draft.
func (r *DraftRepository) Merge(ctx context.Context, userID string, patch entities.DraftPatch) (*entities.EventDraft, error) {
	k := key(userID)
	var merged *entities.EventDraft
	txf := func(tx *redis.Tx) error {
		d, err := decode(tx.Get(ctx, k).Bytes())
		if err != nil {
			return err
		}
		patch.Apply(d)
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("encode draft: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		merged = d
		return nil
	}

	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			if errors.Is(err, domain.ErrNoActiveDraft) {
				return nil, err
			}
			return nil, fmt.Errorf("merge draft: %w", err)
		}
		return merged, nil
	}
	return nil, fmt.Errorf("merge draft of %s: too much contention", userID)
}

// Take uses GETDEL so that only one caller receives the draft.
func (r *DraftRepository) Take(ctx context.Context, userID string) (*entities.EventDraft, error) {
	return decode(r.client.GetDel(ctx, key(userID)).Bytes())
}

func (r *DraftRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func decode(data []byte, err error) (*entities.EventDraft, error) {
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoActiveDraft
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var d entities.EventDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &d, nil
}
