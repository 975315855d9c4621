package entities

// GuildSettings is the per-server configuration.
type GuildSettings struct {
	GuildID          string
	DefaultTimezone  string
	CoachesChannelID string
	SignChannelID    string
}

// Actor is the user behind an interaction.
type Actor struct {
	UserID  string
	IsAdmin bool
}
