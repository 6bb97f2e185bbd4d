package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Upstream  UpstreamConfig
	Ai        AIConfig
	Narrative NarrativeConfig
	Cache     CacheConfig
	Session   SessionConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	// ChartAssetURL is the charting script served to report pages; when
	// empty the radar block is omitted.
	ChartAssetURL string
}

type DatabaseConfig struct {
	Connection string
	// AutoMigrate runs schema creation on startup; always safe to repeat.
	AutoMigrate bool
}

// UpstreamConfig points at the chart-computation provider.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string
	OllamaBaseURL string
	OpenAIKey     string
}

type NarrativeConfig struct {
	Strategy     string // "remote" or "local"
	RequestDelay time.Duration
}

type CacheConfig struct {
	Backend string // "memory" or "redis"
	TTL     time.Duration
}

type SessionConfig struct {
	DefaultTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ChartAssetURL:      getEnv("CHART_ASSET_URL", ""),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("BAZI_API_BASE_URL", "https://rainbow-sanctuary-bazu-production.up.railway.app"),
			Timeout: getEnvAsDuration("BAZI_API_TIMEOUT", 15*time.Second),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		},
		Narrative: NarrativeConfig{
			Strategy:     getEnv("NARRATIVE_STRATEGY", "local"),
			RequestDelay: getEnvAsDuration("NARRATIVE_REQUEST_DELAY", time.Second),
		},
		Cache: CacheConfig{
			Backend: getEnv("CACHE_BACKEND", "memory"),
			TTL:     getEnvAsDuration("CACHE_TTL", time.Hour),
		},
		Session: SessionConfig{
			DefaultTTL: getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
