package services

import (
	"context"
	"errors"
	"testing"

	"xivapi-go/internal/core/domain"
)

func TestSetHomeServer_Success(t *testing.T) {
	var savedGuild, savedServer string
	repo := &mockRepository{
		saveGuildConfigFunc: func(ctx context.Context, guildID, server string) error {
			savedGuild, savedServer = guildID, server
			return nil
		},
	}

	svc := NewConfigurationService(repo)
	result, err := svc.SetHomeServer(context.Background(), "guild-1", "omega")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Omega" {
		t.Errorf("expected 'Omega', got '%s'", result)
	}
	if savedGuild != "guild-1" || savedServer != "Omega" {
		t.Errorf("expected save of guild-1/Omega, got %s/%s", savedGuild, savedServer)
	}
}

func TestSetHomeServer_Formatting(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"omega", "Omega"},
		{"GILGAMESH", "Gilgamesh"},
		{"  cErBeRuS ", "Cerberus"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			svc := NewConfigurationService(&mockRepository{})
			result, _ := svc.SetHomeServer(context.Background(), "guild-1", tt.input)

			if result != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}

func TestSetHomeServer_Error(t *testing.T) {
	repo := &mockRepository{
		saveGuildConfigFunc: func(ctx context.Context, guildID, server string) error {
			return errors.New("db error")
		},
	}

	svc := NewConfigurationService(repo)
	if _, err := svc.SetHomeServer(context.Background(), "guild-1", "omega"); err == nil {
		t.Error("expected error")
	}
}

func TestClearHomeServer(t *testing.T) {
	var deleted string
	repo := &mockRepository{
		deleteGuildConfigFunc: func(ctx context.Context, guildID string) error {
			deleted = guildID
			return nil
		},
	}

	svc := NewConfigurationService(repo)
	if err := svc.ClearHomeServer(context.Background(), "guild-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "guild-123" {
		t.Errorf("expected 'guild-123', got '%s'", deleted)
	}
}

func TestClearHomeServer_Error(t *testing.T) {
	repo := &mockRepository{
		deleteGuildConfigFunc: func(ctx context.Context, guildID string) error {
			return errors.New("db error")
		},
	}

	svc := NewConfigurationService(repo)
	if err := svc.ClearHomeServer(context.Background(), "guild-1"); err == nil {
		t.Error("expected error")
	}
}

func TestGetGuildConfig_Success(t *testing.T) {
	repo := &mockRepository{
		getGuildConfigFunc: func(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
			return &domain.GuildConfig{DiscordGuildID: guildID, HomeServer: "Omega"}, nil
		},
	}

	svc := NewConfigurationService(repo)
	result, err := svc.GetGuildConfig(context.Background(), "guild-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HomeServer != "Omega" {
		t.Errorf("expected 'Omega', got '%s'", result.HomeServer)
	}
}

func TestGetGuildConfig_NotFound(t *testing.T) {
	svc := NewConfigurationService(&mockRepository{})
	result, err := svc.GetGuildConfig(context.Background(), "guild-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Error("expected nil result")
	}
}
