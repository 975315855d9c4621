package entities

import "slices"

// Team is a roster inside one guild, keyed by its name.
type Team struct {
	GuildID  string
	Name     string
	LeaderID string
	RoleID   string
	Members  []string
}

// HasMember reports whether userID is on the roster.
func (t *Team) HasMember(userID string) bool {
	return slices.Contains(t.Members, userID)
}

// RemoveMember drops userID from the roster and reports whether it was present.
func (t *Team) RemoveMember(userID string) bool {
	i := slices.Index(t.Members, userID)
	if i < 0 {
		return false
	}
	t.Members = slices.Delete(slices.Clone(t.Members), i, i+1)
	return true
}
