package commands

import (
	"context"

	"xivapi-go/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type CommandSession interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// ProfileFinder is satisfied by services.ProfileService.
type ProfileFinder interface {
	FindCharacter(ctx context.Context, guildID, name, server string) (*domain.CharacterSummary, error)
	FindFreeCompany(ctx context.Context, guildID, name, server string, withMembers bool) (*domain.FreeCompanySummary, error)
}

// GuildSettings is satisfied by services.ConfigurationService.
type GuildSettings interface {
	SetHomeServer(ctx context.Context, guildID, server string) (string, error)
	ClearHomeServer(ctx context.Context, guildID string) error
	GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error)
}
