package config

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Persistence
	DBDriver string // "sqlite", "postgres" or "memory"
	DBDSN    string // driver-specific; empty uses the driver default

	// Question drafting
	LLMURL     string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel   string // model name, e.g. "qwen3-8b"
	LLMAPIKey  string // optional bearer token
	LLMTimeout time.Duration

	// Session tokens
	JWTSecret string
	TokenTTL  time.Duration

	CORSOrigins []string

	LogFormat string // "json" or "pretty"
	LogLevel  slog.Level
}

// Load reads the configuration from the environment. envFile, when set, must
// exist; otherwise a .env in the working directory is loaded if present.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Fatalf("config: cannot load %s: %v", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBDriver:        getenvDefault("DB_DRIVER", "sqlite"),
		DBDSN:           os.Getenv("DB_DSN"),
		LLMURL:          getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:        getenvDefault("LLM_MODEL", "qwen3-8b"),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMTimeout:      getDurationDefault("LLM_TIMEOUT", 60*time.Second),
		JWTSecret:       mustGetenv("JWT_SECRET"),
		TokenTTL:        getDurationDefault("TOKEN_TTL", 8*time.Hour),
		CORSOrigins:     splitList(getenvDefault("CORS_ORIGINS", "*")),
		LogFormat:       getenvDefault("LOG_FORMAT", "json"),
		LogLevel:        mustGetLevel("LOG_LEVEL"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func mustGetLevel(k string) slog.Level {
	var lvl slog.Level
	v := os.Getenv(k)
	if v == "" {
		return slog.LevelInfo
	}
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return lvl
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
