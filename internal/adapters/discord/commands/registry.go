package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const (
	CmdCharacter       = "character"
	CmdFreeCompany     = "freecompany"
	CmdHomeServer      = "home-server"
	CmdClearHomeServer = "clear-home-server"
)

var adminPerms = int64(discordgo.PermissionAdministrator)

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CmdCharacter,
			Description: "Look up a character on the Lodestone",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Full character name", true),
				stringOption("server", "World to search (defaults to the home server)", false),
			},
		},
		{
			Name:        CmdFreeCompany,
			Description: "Look up a Free Company on the Lodestone",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Free Company name", true),
				stringOption("server", "World to search (defaults to the home server)", false),
				boolOption("members", "Also list the members"),
			},
		},
		{
			Name:                     CmdHomeServer,
			Description:              "Set the default world for lookups in this server",
			DefaultMemberPermissions: &adminPerms,
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Name of the world", true),
			},
		},
		{
			Name:                     CmdClearHomeServer,
			Description:              "Remove the default world for lookups in this server",
			DefaultMemberPermissions: &adminPerms,
		},
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func boolOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        name,
		Description: description,
	}
}

func RegisterCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) []*discordgo.ApplicationCommand {
	registered := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		result, err := session.ApplicationCommandCreate(userID, guildID, cmd)
		if err != nil {
			slog.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registered[i] = result
		slog.Info("Registered command", "name", cmd.Name, "guild", guildID)
	}

	return registered
}

func CleanupCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := session.ApplicationCommandDelete(userID, guildID, cmd.ID); err != nil {
			slog.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
