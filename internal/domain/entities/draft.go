package entities

import "time"

// DraftState is the step an event-creation conversation is waiting on.
type DraftState int

const (
	StateAwaitingTimeAndLocation DraftState = iota
	StateAwaitingTimezone
	StateAwaitingLocation
	StateFinalized
)

func (s DraftState) String() string {
	switch s {
	case StateAwaitingTimeAndLocation:
		return "awaiting_time_and_location"
	case StateAwaitingTimezone:
		return "awaiting_timezone"
	case StateAwaitingLocation:
		return "awaiting_location"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// EventDraft is a partially built event, keyed by the user who ran /event.
type EventDraft struct {
	UserID        string     `json:"userId"`
	Username      string     `json:"username"`
	GuildID       string     `json:"guildId"`
	ChannelID     string     `json:"channelId"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	WhenString    string     `json:"whenString,omitempty"`
	Timezone      string     `json:"timezone"`
	Location      string     `json:"location,omitempty"`
	DurationHours float64    `json:"durationHours"`
	State         DraftState `json:"state"`

	// Prefilled values of the combined completion form.
	PrefillDate string `json:"prefillDate,omitempty"`
	PrefillTime string `json:"prefillTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Complete reports whether the draft carries everything finalization needs.
func (d *EventDraft) Complete() bool {
	return d.WhenString != "" && d.Timezone != "" && d.Location != ""
}

// DraftPatch holds the fields a single interaction contributes to a draft.
// Nil fields are left untouched. Title is absent on purpose: it is fixed at creation.
type DraftPatch struct {
	Description *string
	WhenString  *string
	Timezone    *string
	Location    *string
	State       *DraftState
}

// Apply copies the non-nil fields of p onto d.
func (p DraftPatch) Apply(d *EventDraft) {
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.WhenString != nil {
		d.WhenString = *p.WhenString
	}
	if p.Timezone != nil {
		d.Timezone = *p.Timezone
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.State != nil {
		d.State = *p.State
	}
}

// PendingLocationPrompt tracks the armed text fallback for a user's location step.
type PendingLocationPrompt struct {
	UserID    string
	ChannelID string
	// ReplyChannelID is where the fallback question was delivered; empty until the timer fired.
	ReplyChannelID string
	ArmedAt        time.Time
}

// Delivered reports whether the fallback question has been sent.
func (p PendingLocationPrompt) Delivered() bool {
	return p.ReplyChannelID != ""
}
