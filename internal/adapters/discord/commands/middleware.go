package commands

import (
	"log/slog"
	"runtime/debug"

	"xivapi-go/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(CommandHandler) CommandHandler

// WithAdmin rejects members without the Administrator permission. DMs carry
// no member and are rejected as well.
func WithAdmin(next CommandHandler) CommandHandler {
	return func(s DiscordSession, i *discordgo.InteractionCreate) {
		if i.Member == nil || i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
			respond(s, i, formatting.MsgAdminRequired, true)
			return
		}
		next(s, i)
	}
}

// WithRecover keeps a panicking handler from taking down the gateway
// goroutine. The user gets the generic lookup error, as an edit when the
// handler had already acknowledged the interaction.
func WithRecover(next CommandHandler) CommandHandler {
	return func(s DiscordSession, i *discordgo.InteractionCreate) {
		tracked := &ackTracker{DiscordSession: s}
		defer func() {
			if r := recover(); r != nil {
				name := i.ApplicationCommandData().Name
				slog.Error("Command handler panicked", "command", name, "panic", r, "stack", string(debug.Stack()))
				recordCommand(name, outcomeError)
				if tracked.acknowledged {
					editContent(s, i, formatting.MsgLookupError)
					return
				}
				respond(s, i, formatting.MsgLookupError, true)
			}
		}()
		next(tracked, i)
	}
}

// ackTracker remembers whether an interaction response has been sent.
type ackTracker struct {
	DiscordSession
	acknowledged bool
}

func (t *ackTracker) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	err := t.DiscordSession.InteractionRespond(interaction, resp, options...)
	if err == nil {
		t.acknowledged = true
	}
	return err
}
