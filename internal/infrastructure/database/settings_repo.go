package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/output"
)

var _ output.GuildSettingsRepository = (*GuildSettingsRepository)(nil)

type GuildSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewGuildSettingsRepository(pool *pgxpool.Pool) *GuildSettingsRepository {
	return &GuildSettingsRepository{pool: pool}
}

func (r *GuildSettingsRepository) Get(ctx context.Context, guildID string) (*entities.GuildSettings, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT default_timezone, coaches_channel_id, sign_channel_id
		FROM guild_settings WHERE guild_id = $1`, guildID)
	gs, err := scanSettings(row, guildID)
	if errors.Is(err, pgx.ErrNoRows) {
		return &entities.GuildSettings{GuildID: guildID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get guild settings: %w", err)
	}
	return &gs, nil
}

func (r *GuildSettingsRepository) Save(ctx context.Context, gs *entities.GuildSettings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO guild_settings (guild_id, default_timezone, coaches_channel_id, sign_channel_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id) DO UPDATE SET
			default_timezone = EXCLUDED.default_timezone,
			coaches_channel_id = EXCLUDED.coaches_channel_id,
			sign_channel_id = EXCLUDED.sign_channel_id,
			updated_at = now()`,
		gs.GuildID, gs.DefaultTimezone, gs.CoachesChannelID, gs.SignChannelID)
	if err != nil {
		return fmt.Errorf("save guild settings: %w", err)
	}
	return nil
}
