package ports

import (
	"context"

	"xivapi-go/internal/core/domain"
)

type Repository interface {
	SaveGuildConfig(ctx context.Context, discordGuildID, homeServer string) error
	GetGuildConfig(ctx context.Context, discordGuildID string) (*domain.GuildConfig, error)
	DeleteGuildConfig(ctx context.Context, discordGuildID string) error
	Close()
}

// ProfileFetcher searches and looks up profiles. Searches return hits in the
// server's ranking order; lookups of unknown ids return domain.ErrNotFound.
type ProfileFetcher interface {
	SearchCharacters(ctx context.Context, name, server string) ([]domain.CharacterHit, error)
	FetchCharacter(ctx context.Context, id uint32) (*domain.CharacterSummary, error)
	SearchFreeCompanies(ctx context.Context, name, server string) ([]domain.FreeCompanyHit, error)
	FetchFreeCompany(ctx context.Context, id string, withMembers bool) (*domain.FreeCompanySummary, error)
}
