package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"xivapi-go/internal/adapters/storage/postgres/db"
	"xivapi-go/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type PostgresStore struct {
	pool *pgxpool.Pool
	conn db.DBTX
	q    *db.Queries
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{
		pool: pool,
		conn: pool,
		q:    db.New(pool),
	}

	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// EnsureSchema creates the tables the store needs if they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) SaveGuildConfig(ctx context.Context, guildID, homeServer string) error {
	err := s.q.UpsertGuildConfig(ctx, db.UpsertGuildConfigParams{
		GuildID:    guildID,
		HomeServer: homeServer,
	})
	if err != nil {
		return fmt.Errorf("save guild config: %w", err)
	}
	return nil
}

// GetGuildConfig returns nil without error when the guild has no config.
func (s *PostgresStore) GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	row, err := s.q.GetGuildConfig(ctx, guildID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get guild config: %w", err)
	}

	cfg := &domain.GuildConfig{
		DiscordGuildID: row.GuildID,
		HomeServer:     row.HomeServer,
	}
	if row.UpdatedAt.Valid {
		cfg.UpdatedAt = row.UpdatedAt.Time
	}
	return cfg, nil
}

func (s *PostgresStore) DeleteGuildConfig(ctx context.Context, guildID string) error {
	if err := s.q.DeleteGuildConfig(ctx, guildID); err != nil {
		return fmt.Errorf("delete guild config: %w", err)
	}
	return nil
}
