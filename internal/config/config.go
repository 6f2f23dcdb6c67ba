package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token            string
	DiscordGuildID   string
	DatabaseURL      string
	XivapiBaseURL    string
	XivapiPrivateKey string
	XivapiLanguage   string
	XivapiTimeout    time.Duration
	DefaultServer    string
	MetricsAddr      string
	LogLevel         string
	LogDir           string
	LogMaxSizeMB     int
	LogMaxBackups    int
	LogMaxAgeDays    int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := secretOrEnv("discord_token", "DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}

	dbURL := secretOrEnv("database_url", "DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set (via secret or env var)")
	}

	cfg := &Config{
		Token:            token,
		DiscordGuildID:   envString("DISCORD_GUILD_ID", ""),
		DatabaseURL:      dbURL,
		XivapiBaseURL:    envString("XIVAPI_BASE_URL", "https://xivapi.com"),
		XivapiPrivateKey: secretOrEnv("xivapi_private_key", "XIVAPI_PRIVATE_KEY"),
		XivapiLanguage:   envString("XIVAPI_LANGUAGE", ""),
		XivapiTimeout:    envDuration("XIVAPI_TIMEOUT", 10*time.Second),
		DefaultServer:    envString("DEFAULT_SERVER", ""),
		MetricsAddr:      envString("METRICS_ADDR", ":2112"),
		LogLevel:         envString("LOG_LEVEL", "info"),
		LogDir:           envString("LOG_DIR", ""),
		LogMaxSizeMB:     envInt("LOG_MAX_SIZE_MB", 50),
		LogMaxBackups:    envInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays:    envInt("LOG_MAX_AGE_DAYS", 14),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// secretOrEnv prefers the Docker secret over the environment variable.
func secretOrEnv(secret, key string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return os.Getenv(key)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
