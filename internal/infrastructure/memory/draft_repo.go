// Package memory keeps conversation drafts and posted events for the lifetime
// of the process.
package memory

import (
	"context"
	"sync"

	"leaguebot/internal/domain"
	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

var _ output.DraftRepository = (*DraftRepository)(nil)

type DraftRepository struct {
	mu     sync.Mutex
	drafts map[string]entities.EventDraft
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]entities.EventDraft)}
}

func (r *DraftRepository) Save(_ context.Context, draft *entities.EventDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.UserID] = *draft
	return nil
}

func (r *DraftRepository) Find(_ context.Context, userID string) (*entities.EventDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[userID]
	if !ok {
		return nil, domain.ErrNoActiveDraft
	}
	return &d, nil
}

func (r *DraftRepository) Merge(_ context.Context, userID string, patch entities.DraftPatch) (*entities.EventDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[userID]
	if !ok {
		return nil, domain.ErrNoActiveDraft
	}
	patch.Apply(&d)
	r.drafts[userID] = d
	return &d, nil
}

func (r *DraftRepository) Take(_ context.Context, userID string) (*entities.EventDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[userID]
	if !ok {
		return nil, domain.ErrNoActiveDraft
	}
	delete(r.drafts, userID)
	return &d, nil
}

func (r *DraftRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, userID)
	return nil
}
