package database

import (
	"github.com/jackc/pgx/v5"

	"leaguebot/internal/domain/entities"
)

func scanTeam(row pgx.Row, guildID string) (entities.Team, error) {
	t := entities.Team{GuildID: guildID}
	err := row.Scan(&t.Name, &t.LeaderID, &t.RoleID, &t.Members)
	if t.Members == nil {
		t.Members = []string{}
	}
	return t, err
}

func scanSettings(row pgx.Row, guildID string) (entities.GuildSettings, error) {
	gs := entities.GuildSettings{GuildID: guildID}
	err := row.Scan(&gs.DefaultTimezone, &gs.CoachesChannelID, &gs.SignChannelID)
	return gs, err
}
