package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"xivapi-go/internal/core/domain"
	"xivapi-go/internal/core/ports"
)

type ProfileService struct {
	fetcher       ports.ProfileFetcher
	repo          ports.Repository
	defaultServer string
}

func NewProfileService(fetcher ports.ProfileFetcher, repo ports.Repository, defaultServer string) *ProfileService {
	return &ProfileService{
		fetcher:       fetcher,
		repo:          repo,
		defaultServer: defaultServer,
	}
}

// FindCharacter searches for name on server and looks up the best hit: the
// first exact (case-insensitive) name match, else the top-ranked result.
// An empty server falls back to the guild's home server, then the default.
func (s *ProfileService) FindCharacter(ctx context.Context, guildID, name, server string) (*domain.CharacterSummary, error) {
	name = strings.TrimSpace(name)
	server = s.resolveServer(ctx, guildID, server)

	hits, err := s.fetcher.SearchCharacters(ctx, name, server)
	if err != nil {
		return nil, fmt.Errorf("search characters: %w", err)
	}
	if len(hits) == 0 {
		return nil, domain.ErrNotFound
	}

	best := hits[0]
	for _, h := range hits {
		if strings.EqualFold(h.Name, name) {
			best = h
			break
		}
	}

	slog.Debug("Resolved character", "name", name, "server", server, "id", best.ID, "candidates", len(hits))

	character, err := s.fetcher.FetchCharacter(ctx, best.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch character %d: %w", best.ID, err)
	}
	return character, nil
}

// FindFreeCompany resolves a Free Company the same way as FindCharacter.
// withMembers also fetches the member roster.
func (s *ProfileService) FindFreeCompany(ctx context.Context, guildID, name, server string, withMembers bool) (*domain.FreeCompanySummary, error) {
	name = strings.TrimSpace(name)
	server = s.resolveServer(ctx, guildID, server)

	hits, err := s.fetcher.SearchFreeCompanies(ctx, name, server)
	if err != nil {
		return nil, fmt.Errorf("search free companies: %w", err)
	}
	if len(hits) == 0 {
		return nil, domain.ErrNotFound
	}

	best := hits[0]
	for _, h := range hits {
		if strings.EqualFold(h.Name, name) {
			best = h
			break
		}
	}

	fc, err := s.fetcher.FetchFreeCompany(ctx, best.ID, withMembers)
	if err != nil {
		return nil, fmt.Errorf("fetch free company %s: %w", best.ID, err)
	}
	return fc, nil
}

func (s *ProfileService) resolveServer(ctx context.Context, guildID, server string) string {
	if server = strings.TrimSpace(server); server != "" {
		return FormatServer(server)
	}

	if guildID != "" {
		cfg, err := s.repo.GetGuildConfig(ctx, guildID)
		if err != nil {
			slog.Warn("Failed to load guild config, using default server", "guild", guildID, "error", err)
		} else if cfg != nil && cfg.HomeServer != "" {
			return cfg.HomeServer
		}
	}

	return s.defaultServer
}
