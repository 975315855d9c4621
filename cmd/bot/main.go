package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leaguebot/internal/adapters/discord"
	"leaguebot/internal/application"
	"leaguebot/internal/config"
	"leaguebot/internal/infrastructure/database"
	"leaguebot/internal/infrastructure/i18n"
	"leaguebot/internal/infrastructure/jsonstore"
	"leaguebot/internal/infrastructure/memory"
	"leaguebot/internal/infrastructure/redisstore"
	"leaguebot/internal/ports/output"
	"leaguebot/pkg/timeparse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("bot stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	settingsRepo, teamRepo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var drafts output.DraftRepository = memory.NewDraftRepository()
	if cfg.RedisURL != "" {
		client, err := redisstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		drafts = redisstore.NewDraftRepository(client)
		slog.Info("drafts stored in redis")
	}

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		return err
	}
	translator := i18n.NewTranslator(cfg.Locale)
	gateway := discord.NewGateway(session, translator, cfg.Locale)
	events := memory.NewEventRepository()

	eventUC := application.NewEventCreationService(
		application.NewConversationStore(drafts, time.Now),
		timeparse.NewResolver(),
		settingsRepo,
		events,
		gateway,
		gateway,
		gateway,
		application.EventCreationConfig{
			DefaultTimezone: cfg.DefaultTimezone,
			FallbackDelay:   cfg.LocationFallbackDelay,
		},
	)
	rsvpUC := application.NewRSVPService(events, settingsRepo, gateway, gateway)
	settingsUC := application.NewSettingsService(settingsRepo, cfg.DefaultTimezone)
	teamUC := application.NewTeamService(teamRepo, settingsRepo, gateway, gateway)

	handler := discord.NewHandler(eventUC, rsvpUC, settingsUC, teamUC, translator, cfg.Locale)
	return discord.NewBot(session, handler, cfg.PresenceInterval).Start(ctx)
}

// openStore opens the configured settings and team storage.
func openStore(ctx context.Context, cfg *config.Config) (output.GuildSettingsRepository, output.TeamRepository, func(), error) {
	if cfg.StorageBackend == config.BackendPostgres {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		return database.NewGuildSettingsRepository(pool), database.NewTeamRepository(pool), pool.Close, nil
	}

	settings, err := jsonstore.NewGuildSettingsRepository(cfg.SettingsFile)
	if err != nil {
		return nil, nil, nil, err
	}
	teams, err := jsonstore.NewTeamRepository(cfg.TeamsFile)
	if err != nil {
		return nil, nil, nil, err
	}
	slog.Info("using json storage", "settings", cfg.SettingsFile, "teams", cfg.TeamsFile)
	return settings, teams, func() {}, nil
}
