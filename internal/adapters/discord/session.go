package discord

import (
	"errors"
	"fmt"

	"xivapi-go/internal/config"

	"github.com/bwmarrin/discordgo"
)

// NewSession creates the bot session and attaches handlers. The bot only
// answers slash commands, so it asks for the guilds intent and keeps no
// state beyond the guild list ReadyHandler reports.
func NewSession(cfg *config.Config, handlers ...any) (*discordgo.Session, error) {
	if cfg.Token == "" {
		return nil, errors.New("discord token is empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds

	session.State.MaxMessageCount = 0
	session.State.TrackChannels = false
	session.State.TrackThreads = false
	session.State.TrackEmojis = false
	session.State.TrackStickers = false
	session.State.TrackMembers = false
	session.State.TrackThreadMembers = false
	session.State.TrackRoles = false
	session.State.TrackVoice = false
	session.State.TrackPresences = false

	for _, h := range handlers {
		session.AddHandler(h)
	}

	return session, nil
}
