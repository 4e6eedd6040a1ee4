package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Firebase   FirebaseConfig
	Storage    StorageConfig
	App        AppConfig
	Generation GenerationConfig
	Audit      AuditConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	// DSN overrides the individual fields when set.
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	// Addr empty disables the generation cache.
	Addr     string
	Password string
	DB       int
}

type FirebaseConfig struct {
	// CredentialsPath empty falls back to header-based users (development only).
	CredentialsPath string
}

type StorageConfig struct {
	// Bucket empty disables garment image uploads.
	Bucket        string
	Region        string
	PublicBaseURL string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

type GenerationConfig struct {
	ResultCap     int
	CacheTTL      time.Duration
	RatePerMinute int
	RateBurst     int
}

type AuditConfig struct {
	// Schedule is a six-field cron expression (seconds first). Empty disables the nightly audit.
	Schedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ORIGIN", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "meshfit"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Storage: StorageConfig{
			Bucket:        getEnv("IMAGES_BUCKET", ""),
			Region:        getEnv("AWS_REGION", "us-east-1"),
			PublicBaseURL: getEnv("IMAGES_PUBLIC_BASE_URL", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Generation: GenerationConfig{
			ResultCap:     getEnvAsInt("OUTFIT_RESULT_CAP", 12),
			CacheTTL:      getEnvAsDuration("OUTFIT_CACHE_TTL", 10*time.Minute),
			RatePerMinute: getEnvAsInt("OUTFIT_RATE_PER_MINUTE", 30),
			RateBurst:     getEnvAsInt("OUTFIT_RATE_BURST", 5),
		},
		Audit: AuditConfig{
			Schedule: getEnv("AUDIT_SCHEDULE", "0 0 3 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.DSN == "" && c.Database.Host == "" {
		return fmt.Errorf("DB_DSN or DB_HOST is required")
	}

	if c.Generation.ResultCap <= 0 {
		return fmt.Errorf("OUTFIT_RESULT_CAP must be positive")
	}

	if c.Generation.RatePerMinute <= 0 || c.Generation.RateBurst <= 0 {
		return fmt.Errorf("OUTFIT_RATE_PER_MINUTE and OUTFIT_RATE_BURST must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsList splits a comma-separated value and drops empty entries.
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
