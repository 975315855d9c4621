package entities

import "time"

// RSVPStatus is one of the three mutually exclusive attendance answers.
type RSVPStatus string

const (
	RSVPGoing        RSVPStatus = "going"
	RSVPMaybe        RSVPStatus = "maybe"
	RSVPCannotAttend RSVPStatus = "cannot_attend"
)

// Valid reports whether s is a known status.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPCannotAttend:
		return true
	}
	return false
}

// Absence is a "cannot attend" answer with its mandatory reason.
type Absence struct {
	UserID string
	Reason string
}

// Ledger is the attendance state of one posted event. Slices keep insertion order.
type Ledger struct {
	Going  []string
	Maybe  []string
	Cannot []Absence
}

// StatusOf returns the user's current answer, or "" when they never answered.
func (l *Ledger) StatusOf(userID string) RSVPStatus {
	if indexOf(l.Going, userID) >= 0 {
		return RSVPGoing
	}
	if indexOf(l.Maybe, userID) >= 0 {
		return RSVPMaybe
	}
	if l.absenceIndex(userID) >= 0 {
		return RSVPCannotAttend
	}
	return ""
}

// SetStatus records the user's answer. A user is removed from every collection
// before being inserted into the target one; repeating the current answer keeps
// the user's position (and refreshes the reason for CannotAttend).
func (l *Ledger) SetStatus(userID string, status RSVPStatus, reason string) {
	if l.StatusOf(userID) == status {
		if status == RSVPCannotAttend {
			l.Cannot[l.absenceIndex(userID)].Reason = reason
		}
		return
	}
	l.remove(userID)
	switch status {
	case RSVPGoing:
		l.Going = append(l.Going, userID)
	case RSVPMaybe:
		l.Maybe = append(l.Maybe, userID)
	case RSVPCannotAttend:
		l.Cannot = append(l.Cannot, Absence{UserID: userID, Reason: reason})
	}
}

func (l *Ledger) remove(userID string) {
	if i := indexOf(l.Going, userID); i >= 0 {
		l.Going = append(l.Going[:i], l.Going[i+1:]...)
	}
	if i := indexOf(l.Maybe, userID); i >= 0 {
		l.Maybe = append(l.Maybe[:i], l.Maybe[i+1:]...)
	}
	if i := l.absenceIndex(userID); i >= 0 {
		l.Cannot = append(l.Cannot[:i], l.Cannot[i+1:]...)
	}
}

func (l *Ledger) absenceIndex(userID string) int {
	for i, a := range l.Cannot {
		if a.UserID == userID {
			return i
		}
	}
	return -1
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// EventRecord is a posted event, keyed by the ID of the message carrying it.
type EventRecord struct {
	ID            string
	MessageID     string
	GuildID       string
	ChannelID     string
	CreatorID     string
	CreatorName   string
	Title         string
	Description   string
	StartsAt      time.Time
	EndsAt        time.Time
	Timezone      string
	DisplayTime   string
	DurationHours float64
	Location      string

	// ScheduledEventURL is empty when the guild scheduled event could not be created.
	ScheduledEventURL string
	CalendarLink      string

	Ledger    Ledger
	CreatedAt time.Time
}

// Clone returns a copy of the ledger that shares no backing arrays with l.
func (l Ledger) Clone() Ledger {
	return Ledger{
		Going:  append([]string(nil), l.Going...),
		Maybe:  append([]string(nil), l.Maybe...),
		Cannot: append([]Absence(nil), l.Cannot...),
	}
}
