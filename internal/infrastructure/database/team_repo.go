package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

var _ output.TeamRepository = (*TeamRepository)(nil)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) List(ctx context.Context, guildID string) ([]entities.Team, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, leader_id, role_id, members
		FROM teams WHERE guild_id = $1 ORDER BY name`, guildID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []entities.Team
	for rows.Next() {
		t, err := scanTeam(rows, guildID)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) Save(ctx context.Context, team *entities.Team) error {
	members := team.Members
	if members == nil {
		members = []string{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO teams (guild_id, name, leader_id, role_id, members)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (guild_id, name) DO UPDATE SET
			leader_id = EXCLUDED.leader_id,
			role_id = EXCLUDED.role_id,
			members = EXCLUDED.members,
			updated_at = now()`,
		team.GuildID, team.Name, team.LeaderID, team.RoleID, members)
	if err != nil {
		return fmt.Errorf("save team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, guildID, name string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE guild_id = $1 AND name = $2`, guildID, name); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
