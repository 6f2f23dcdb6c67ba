package services

import (
	"context"
	"strings"

	"xivapi-go/internal/core/domain"
	"xivapi-go/internal/core/ports"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ConfigurationService struct {
	repo ports.Repository
}

func NewConfigurationService(repo ports.Repository) *ConfigurationService {
	return &ConfigurationService{repo: repo}
}

// SetHomeServer stores the guild's default world and returns the name as saved.
func (s *ConfigurationService) SetHomeServer(ctx context.Context, guildID, server string) (string, error) {
	formatted := FormatServer(server)
	err := s.repo.SaveGuildConfig(ctx, guildID, formatted)
	return formatted, err
}

func (s *ConfigurationService) ClearHomeServer(ctx context.Context, guildID string) error {
	return s.repo.DeleteGuildConfig(ctx, guildID)
}

func (s *ConfigurationService) GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	return s.repo.GetGuildConfig(ctx, guildID)
}

// FormatServer title-cases a world name the way the Lodestone spells it.
func FormatServer(server string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(server)))
}
