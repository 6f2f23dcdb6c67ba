package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"xivapi-go/internal/adapters/discord/commands"
	"xivapi-go/internal/config"
	"xivapi-go/internal/core/ports"
)

type mockStore struct {
	ports.Repository
	closed bool
}

func (m *mockStore) Close() {
	m.closed = true
}

func TestApp_Shutdown(t *testing.T) {
	store := &mockStore{}

	metricsServer := &http.Server{Addr: "127.0.0.1:0"}
	go func() {
		_ = metricsServer.ListenAndServe()
	}()
	time.Sleep(10 * time.Millisecond)

	app := &App{
		config:        &config.Config{},
		store:         store,
		metricsServer: metricsServer,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if !store.closed {
		t.Error("Store was not closed")
	}
}

func TestApp_Shutdown_NilComponents(t *testing.T) {
	app := &App{
		config: &config.Config{},
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed with nil components: %v", err)
	}
}

func TestStartMetricsServer(t *testing.T) {
	app := &App{
		config: &config.Config{MetricsAddr: "127.0.0.1:0"},
	}

	app.startMetricsServer()

	if app.metricsServer == nil {
		t.Fatal("Metrics server not initialized")
	}
	if app.metricsServer.Addr != "127.0.0.1:0" {
		t.Errorf("Expected configured address, got %q", app.metricsServer.Addr)
	}

	_ = app.metricsServer.Close()
}

func TestNewXivapiClient(t *testing.T) {
	cfg := &config.Config{
		XivapiBaseURL: "http://127.0.0.1:9",
		XivapiTimeout: 3 * time.Second,
	}

	if client := newXivapiClient(cfg, nil); client == nil {
		t.Fatal("expected client")
	}
}

func TestNewRouter_RegistersAllCommands(t *testing.T) {
	router := newRouter(&commands.BotHandler{})

	for _, cmd := range commands.GetApplicationCommands() {
		if !router.Has(cmd.Name) {
			t.Errorf("command %q has no route", cmd.Name)
		}
	}
}
