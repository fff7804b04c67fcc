package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	Adzuna   AdzunaConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Matching MatchingConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	URL string
}

type GeminiConfig struct {
	APIKey     string
	ScoreModel string
	ChatModel  string
}

type AdzunaConfig struct {
	AppID   string
	AppKey  string
	BaseURL string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type AuthConfig struct {
	JWTSecret    string
	UserEmail    string
	UserPassword string
}

type MatchingConfig struct {
	CacheTTL      time.Duration
	OracleTimeout time.Duration
	JobPageSize   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ai_job_tracker"),
		},
		Redis: RedisConfig{
			// Empty URL switches the cache layer to safe mode (no-op store).
			URL: getEnv("REDIS_URL", ""),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			ScoreModel: getEnv("GEMINI_SCORE_MODEL", "gemini-2.5-flash"),
			ChatModel:  getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-flash-lite"),
		},
		Adzuna: AdzunaConfig{
			AppID:   getEnv("ADZUNA_APP_ID", ""),
			AppKey:  getEnv("ADZUNA_APP_KEY", ""),
			BaseURL: getEnv("ADZUNA_BASE_URL", "https://api.adzuna.com/v1/api/jobs/in/search/1"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
			UserEmail:    getEnv("APP_USER_EMAIL", "test@gmail.com"),
			UserPassword: getEnv("APP_USER_PASSWORD", "test@123"),
		},
		Matching: MatchingConfig{
			CacheTTL:      getEnvAsDuration("MATCH_CACHE_TTL", "1h"),
			OracleTimeout: getEnvAsDuration("ORACLE_TIMEOUT", "5s"),
			JobPageSize:   getEnvAsInt("JOB_PAGE_SIZE", 50),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
