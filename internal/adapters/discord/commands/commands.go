package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"xivapi-go/internal/adapters/discord/formatting"
	"xivapi-go/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const defaultLookupTimeout = 15 * time.Second

type BotHandler struct {
	Profiles ProfileFinder
	Settings GuildSettings
	// LookupTimeout bounds one command's search plus lookup.
	LookupTimeout time.Duration
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("XIVAPI bot is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

func (h *BotHandler) Character(s DiscordSession, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	name := getStringOption(opts, "name")
	server := getStringOption(opts, "server")
	if name == "" {
		recordCommand(CmdCharacter, outcomeInvalid)
		respond(s, i, formatting.MsgNameRequired, true)
		return
	}

	if err := deferResponse(s, i); err != nil {
		slog.Error("Failed to defer character response", "error", err)
		return
	}

	ctx, cancel := h.lookupContext()
	defer cancel()

	character, err := h.Profiles.FindCharacter(ctx, i.GuildID, name, server)
	if err != nil {
		h.lookupFailed(s, i, CmdCharacter, err, formatting.MsgCharacterNotFound(name, server))
		return
	}

	recordCommand(CmdCharacter, outcomeSuccess)
	editEmbed(s, i, formatting.CharacterEmbed(character))
}

func (h *BotHandler) FreeCompany(s DiscordSession, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	name := getStringOption(opts, "name")
	server := getStringOption(opts, "server")
	withMembers := getBoolOption(opts, "members")
	if name == "" {
		recordCommand(CmdFreeCompany, outcomeInvalid)
		respond(s, i, formatting.MsgNameRequired, true)
		return
	}

	if err := deferResponse(s, i); err != nil {
		slog.Error("Failed to defer free company response", "error", err)
		return
	}

	ctx, cancel := h.lookupContext()
	defer cancel()

	fc, err := h.Profiles.FindFreeCompany(ctx, i.GuildID, name, server, withMembers)
	if err != nil {
		h.lookupFailed(s, i, CmdFreeCompany, err, formatting.MsgFreeCompanyNotFound(name, server))
		return
	}

	recordCommand(CmdFreeCompany, outcomeSuccess)
	editEmbed(s, i, formatting.FreeCompanyEmbed(fc))
}

func (h *BotHandler) HomeServer(s DiscordSession, i *discordgo.InteractionCreate) {
	server := getStringOption(i.ApplicationCommandData().Options, "name")
	if server == "" {
		recordCommand(CmdHomeServer, outcomeInvalid)
		respond(s, i, formatting.MsgServerRequired, true)
		return
	}

	formatted, err := h.Settings.SetHomeServer(context.Background(), i.GuildID, server)
	if err != nil {
		slog.Error("Failed to save home server", "guild_id", i.GuildID, "error", err)
		recordCommand(CmdHomeServer, outcomeError)
		respond(s, i, formatting.MsgSaveError, true)
		return
	}

	recordCommand(CmdHomeServer, outcomeSuccess)
	respond(s, i, formatting.MsgHomeServerSet(formatted), false)
}

func (h *BotHandler) ClearHomeServer(s DiscordSession, i *discordgo.InteractionCreate) {
	if err := h.Settings.ClearHomeServer(context.Background(), i.GuildID); err != nil {
		slog.Error("Failed to clear home server", "guild_id", i.GuildID, "error", err)
		recordCommand(CmdClearHomeServer, outcomeError)
		respond(s, i, formatting.MsgClearError, true)
		return
	}

	recordCommand(CmdClearHomeServer, outcomeSuccess)
	respond(s, i, formatting.MsgClearSuccess, false)
}

func (h *BotHandler) lookupContext() (context.Context, context.CancelFunc) {
	timeout := h.LookupTimeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (h *BotHandler) lookupFailed(s DiscordSession, i *discordgo.InteractionCreate, command string, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		recordCommand(command, outcomeNotFound)
		editContent(s, i, notFoundMsg)
		return
	}

	msg, outcome := lookupFailure(err)
	slog.Error("Lookup failed", "command", command, "guild_id", i.GuildID, "error", err)
	recordCommand(command, outcome)
	editContent(s, i, msg)
}
