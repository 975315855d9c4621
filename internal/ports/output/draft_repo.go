package output

import (
	"context"

	"leaguebot/internal/domain/entities"
)

// DraftRepository holds at most one event draft per user.
// Find and Take return domain.ErrNoActiveDraft when the user has none.
type DraftRepository interface {
	Save(ctx context.Context, draft *entities.EventDraft) error
	Find(ctx context.Context, userID string) (*entities.EventDraft, error)
	// Merge applies patch to the stored draft atomically and returns the result.
	// It never recreates a draft that was taken or deleted.
	Merge(ctx context.Context, userID string, patch entities.DraftPatch) (*entities.EventDraft, error)
	// Take removes and returns the draft atomically.
	Take(ctx context.Context, userID string) (*entities.EventDraft, error)
	Delete(ctx context.Context, userID string) error
}
