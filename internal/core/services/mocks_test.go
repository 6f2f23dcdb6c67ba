package services

import (
	"context"

	"xivapi-go/internal/core/domain"
)

type mockRepository struct {
	saveGuildConfigFunc   func(ctx context.Context, guildID, server string) error
	deleteGuildConfigFunc func(ctx context.Context, guildID string) error
	getGuildConfigFunc    func(ctx context.Context, guildID string) (*domain.GuildConfig, error)
}

func (m *mockRepository) SaveGuildConfig(ctx context.Context, guildID, server string) error {
	if m.saveGuildConfigFunc != nil {
		return m.saveGuildConfigFunc(ctx, guildID, server)
	}
	return nil
}

func (m *mockRepository) DeleteGuildConfig(ctx context.Context, guildID string) error {
	if m.deleteGuildConfigFunc != nil {
		return m.deleteGuildConfigFunc(ctx, guildID)
	}
	return nil
}

func (m *mockRepository) GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	if m.getGuildConfigFunc != nil {
		return m.getGuildConfigFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockRepository) Close() {}

type mockFetcher struct {
	searchCharactersFunc    func(ctx context.Context, name, server string) ([]domain.CharacterHit, error)
	fetchCharacterFunc      func(ctx context.Context, id uint32) (*domain.CharacterSummary, error)
	searchFreeCompaniesFunc func(ctx context.Context, name, server string) ([]domain.FreeCompanyHit, error)
	fetchFreeCompanyFunc    func(ctx context.Context, id string, withMembers bool) (*domain.FreeCompanySummary, error)
}

func (m *mockFetcher) SearchCharacters(ctx context.Context, name, server string) ([]domain.CharacterHit, error) {
	if m.searchCharactersFunc != nil {
		return m.searchCharactersFunc(ctx, name, server)
	}
	return nil, nil
}

func (m *mockFetcher) FetchCharacter(ctx context.Context, id uint32) (*domain.CharacterSummary, error) {
	if m.fetchCharacterFunc != nil {
		return m.fetchCharacterFunc(ctx, id)
	}
	return &domain.CharacterSummary{ID: id}, nil
}

func (m *mockFetcher) SearchFreeCompanies(ctx context.Context, name, server string) ([]domain.FreeCompanyHit, error) {
	if m.searchFreeCompaniesFunc != nil {
		return m.searchFreeCompaniesFunc(ctx, name, server)
	}
	return nil, nil
}

func (m *mockFetcher) FetchFreeCompany(ctx context.Context, id string, withMembers bool) (*domain.FreeCompanySummary, error) {
	if m.fetchFreeCompanyFunc != nil {
		return m.fetchFreeCompanyFunc(ctx, id, withMembers)
	}
	return &domain.FreeCompanySummary{ID: id}, nil
}
