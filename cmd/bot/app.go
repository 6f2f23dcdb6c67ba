package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"xivapi-go/internal/adapters/discord"
	"xivapi-go/internal/adapters/discord/commands"
	"xivapi-go/internal/adapters/storage/postgres"
	xivapiadapter "xivapi-go/internal/adapters/xivapi"
	"xivapi-go/internal/config"
	"xivapi-go/internal/core/ports"
	"xivapi-go/internal/core/services"
	"xivapi-go/xivapi"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config             *config.Config
	store              ports.Repository
	discord            *discordgo.Session
	router             *commands.Router
	metricsServer      *http.Server
	registeredCommands []*discordgo.ApplicationCommand
}

func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := postgres.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to storage: %w", err)
	}

	client := newXivapiClient(cfg, logger)

	configService := services.NewConfigurationService(store)
	profileService := services.NewProfileService(xivapiadapter.NewAdapter(client), store, cfg.DefaultServer)

	botHandler := &commands.BotHandler{
		Profiles:      profileService,
		Settings:      configService,
		LookupTimeout: 2 * cfg.XivapiTimeout,
	}

	router := newRouter(botHandler)

	session, err := discord.NewSession(cfg, commands.ReadyHandler, router.HandleFunc())
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{
		config:  cfg,
		store:   store,
		discord: session,
		router:  router,
	}, nil
}

func newXivapiClient(cfg *config.Config, logger *slog.Logger) *xivapi.Client {
	return xivapi.NewClient(
		xivapi.WithBaseURL(cfg.XivapiBaseURL),
		xivapi.WithHTTPClient(xivapiadapter.NewHTTPClient(cfg.XivapiTimeout)),
		xivapi.WithPrivateKey(cfg.XivapiPrivateKey),
		xivapi.WithLanguage(cfg.XivapiLanguage),
		xivapi.WithLogger(logger),
	)
}

func newRouter(h *commands.BotHandler) *commands.Router {
	router := commands.NewRouter()
	router.Register(commands.CmdCharacter, h.Character, commands.WithRecover)
	router.Register(commands.CmdFreeCompany, h.FreeCompany, commands.WithRecover)
	router.Register(commands.CmdHomeServer, h.HomeServer, commands.WithRecover, commands.WithAdmin)
	router.Register(commands.CmdClearHomeServer, h.ClearHomeServer, commands.WithRecover, commands.WithAdmin)
	return router
}

func (a *App) Run() error {
	if err := a.discord.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	a.registeredCommands = commands.RegisterCommands(
		a.discord,
		commands.GetApplicationCommands(),
		a.discord.State.User.ID,
		a.config.DiscordGuildID,
	)

	a.startMetricsServer()

	slog.Info("XIVAPI bot is running", "guild", a.config.DiscordGuildID, "default_server", a.config.DefaultServer)
	return nil
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Starting metrics server", "addr", a.metricsServer.Addr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.discord != nil {
		if a.discord.State != nil && a.discord.State.User != nil {
			commands.CleanupCommands(a.discord, a.registeredCommands, a.discord.State.User.ID, a.config.DiscordGuildID)
		}
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord session: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}

	if a.store != nil {
		a.store.Close()
	}

	return errors.Join(errs...)
}
