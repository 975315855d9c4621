package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

// ConversationStore owns event drafts and the pending location fallback of
// each user. Drafts live in the repository; fallback timers live in process.
type ConversationStore struct {
	drafts output.DraftRepository
	now    func() time.Time

	mu      sync.Mutex
	pending map[string]*pendingPrompt
}

type pendingPrompt struct {
	prompt entities.PendingLocationPrompt
	timer  *time.Timer
}

func NewConversationStore(drafts output.DraftRepository, now func() time.Time) *ConversationStore {
	if now == nil {
		now = time.Now
	}
	return &ConversationStore{
		drafts:  drafts,
		now:     now,
		pending: make(map[string]*pendingPrompt),
	}
}

// Start stores a fresh draft, replacing any draft the user already had and
// cancelling its fallback.
func (c *ConversationStore) Start(ctx context.Context, draft *entities.EventDraft) error {
	c.CancelFallback(draft.UserID)
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = c.now()
	}
	return c.drafts.Save(ctx, draft)
}

// Get returns the user's draft or domain.ErrNoActiveDraft.
func (c *ConversationStore) Get(ctx context.Context, userID string) (*entities.EventDraft, error) {
	return c.drafts.Find(ctx, userID)
}

// Merge applies patch to the user's draft and returns the result. It fails with
// domain.ErrNoActiveDraft when the draft does not exist.
func (c *ConversationStore) Merge(ctx context.Context, userID string, patch entities.DraftPatch) (*entities.EventDraft, error) {
	return c.drafts.Merge(ctx, userID, patch)
}

// Complete removes and returns the user's draft. Only one caller can complete
// a given draft.
func (c *ConversationStore) Complete(ctx context.Context, userID string) (*entities.EventDraft, error) {
	c.CancelFallback(userID)
	return c.drafts.Take(ctx, userID)
}

// Discard drops the draft and any armed fallback.
func (c *ConversationStore) Discard(ctx context.Context, userID string) error {
	c.CancelFallback(userID)
	return c.drafts.Delete(ctx, userID)
}

// ArmFallback schedules fire after delay, replacing any fallback already armed
// for the user. fire runs at most once and never after a cancel or re-arm.
func (c *ConversationStore) ArmFallback(userID, channelID string, delay time.Duration, fire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.pending[userID]; ok {
		old.timer.Stop()
	}
	entry := &pendingPrompt{prompt: entities.PendingLocationPrompt{
		UserID:    userID,
		ChannelID: channelID,
		ArmedAt:   c.now(),
	}}
	entry.timer = time.AfterFunc(delay, func() {
		c.mu.Lock()
		current := c.pending[userID] == entry
		c.mu.Unlock()
		if !current {
			return
		}
		fire()
	})
	c.pending[userID] = entry
}

// CancelFallback stops and forgets the user's fallback. It reports whether one was armed.
func (c *ConversationStore) CancelFallback(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.pending[userID]
	if !ok {
		return false
	}
	entry.timer.Stop()
	delete(c.pending, userID)
	return true
}

// MarkPromptDelivered records where the fallback question landed so that a
// plain text reply there can be matched to the user's draft.
func (c *ConversationStore) MarkPromptDelivered(userID, replyChannelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.pending[userID]; ok {
		entry.prompt.ReplyChannelID = replyChannelID
		return
	}
	slog.Debug("fallback delivered after cancel", "user", userID)
}

// PendingPrompt returns the user's armed fallback, if any.
func (c *ConversationStore) PendingPrompt(userID string) (entities.PendingLocationPrompt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.pending[userID]
	if !ok {
		return entities.PendingLocationPrompt{}, false
	}
	return entry.prompt, true
}
