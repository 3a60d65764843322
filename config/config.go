package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port    string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type TelemetryConfig struct {
	// AggregationMode is "replay" (full raw log, recompute on query) or
	// "tally" (O(1) counters, no raw retention).
	AggregationMode string
	// StoreDriver is "memory" or "postgres"; only meaningful in replay mode.
	StoreDriver string
	// TallyBackend is "memory" or "redis"; only meaningful in tally mode.
	TallyBackend string
}

type InsightsConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type AdminConfig struct {
	PasswordHash string
	JWTSecret    string
}

type Config struct {
	Server    ServerConfig
	DB        DatabaseConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
	Insights  InsightsConfig
	Admin     AdminConfig
	Env       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "3000"),
			BaseURL: getEnv("BASE_URL", "http://localhost:3000"),
		},
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "uxpulse"),
			Password: getEnv("DB_PASS", ""),
			DBName:   getEnv("DB_NAME", "uxpulse"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Telemetry: TelemetryConfig{
			AggregationMode: getEnv("AGGREGATION_MODE", "replay"),
			StoreDriver:     getEnv("STORE_DRIVER", "memory"),
			TallyBackend:    getEnv("TALLY_BACKEND", "memory"),
		},
		Insights: InsightsConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			Model:   getEnv("OPENROUTER_MODEL", "arcee-ai/trinity-mini:free"),
			Timeout: time.Duration(getEnvInt("INSIGHTS_TIMEOUT", 30)) * time.Second,
		},
		Admin: AdminConfig{
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
		},
		Env: getEnv("ENV", "prod"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
