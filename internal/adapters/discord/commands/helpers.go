package commands

import (
	"errors"
	"log/slog"
	"net/http"

	"xivapi-go/internal/adapters/discord/formatting"
	"xivapi-go/internal/adapters/metrics"
	"xivapi-go/xivapi"

	"github.com/bwmarrin/discordgo"
)

const (
	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
	outcomeUnknown  = "unknown"
)

func recordCommand(name, outcome string) {
	metrics.DiscordCommands.WithLabelValues(name, outcome).Inc()
}

func respond(s DiscordSession, i *discordgo.InteractionCreate, msg string, ephemeral bool) {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   flags,
		},
	}); err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

// deferResponse acknowledges the interaction so the lookup may take longer
// than Discord's three second response window.
func deferResponse(s DiscordSession, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func editContent(s DiscordSession, i *discordgo.InteractionCreate, msg string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &msg}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

func editEmbed(s DiscordSession, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

func getStringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func getBoolOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.BoolValue()
		}
	}
	return false
}

// lookupFailure picks the user-facing message and metric outcome for a
// failed lookup that was not a plain not-found.
func lookupFailure(err error) (string, string) {
	var queryErr *xivapi.QueryError
	if errors.As(err, &queryErr) {
		return formatting.MsgInvalidQuery(queryErr.Reason), outcomeInvalid
	}

	var statusErr *xivapi.HTTPStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return formatting.MsgRateLimited, outcomeError
		case statusErr.StatusCode >= http.StatusInternalServerError:
			return formatting.MsgLodestoneDown, outcomeError
		}
	}

	var schemaErr *xivapi.SchemaMismatchError
	var parseErr *xivapi.ParseError
	if errors.As(err, &schemaErr) || errors.As(err, &parseErr) {
		return formatting.MsgUnexpectedResponse, outcomeError
	}

	return formatting.MsgLookupError, outcomeError
}
