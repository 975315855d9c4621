package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	pkgdiscord "leaguebot/pkg/discord"
)

// Bot is the Discord adapter.
type Bot struct {
	session          *discordgo.Session
	handler          *Handler
	presenceInterval time.Duration
	presence         *cron.Cron
}

// NewSession creates an unopened session with the intents the bot needs.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
	return s, nil
}

// NewBot wires handler onto session.
func NewBot(session *discordgo.Session, handler *Handler, presenceInterval time.Duration) *Bot {
	bot := &Bot{
		session:          session,
		handler:          handler,
		presenceInterval: presenceInterval,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handler.HandleMessage)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("logged in", "user", r.User.Username, "guilds", len(r.Guilds))
	})
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case cmdValue:
			b.handler.HandleValue(s, i)
		case cmdHelp:
			b.handler.HandleHelp(s, i)
		case cmdEvent:
			b.handler.HandleEvent(s, i)
		case cmdSettings:
			b.handler.HandleSettings(s, i)
		case cmdTeams:
			b.handler.HandleTeams(s, i)
		case cmdSign:
			b.handler.HandleSign(s, i)
		}
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case selectEventTime:
			b.handler.HandleTimeSelect(s, i)
		case selectEventTimezone:
			b.handler.HandleTimezoneSelect(s, i)
		case pkgdiscord.ButtonGoing, pkgdiscord.ButtonMaybe:
			b.handler.HandleRSVP(s, i)
		case pkgdiscord.ButtonCant:
			b.handler.HandleCant(s, i)
		}
	}
}

// Start opens the session, registers the commands and runs until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.Stop()

	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, "", Commands()); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	presence, err := startPresence(b.session, b.presenceInterval)
	if err != nil {
		return err
	}
	b.presence = presence

	slog.Info("bot online")
	<-ctx.Done()
	return nil
}

// Stop halts the presence rotation and closes the session.
func (b *Bot) Stop() {
	if b.presence != nil {
		<-b.presence.Stop().Done()
		b.presence = nil
	}
	if err := b.session.Close(); err != nil {
		slog.Warn("close discord session", "error", err)
	}
}
