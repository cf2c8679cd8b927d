package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Source kinds.
const (
	SourceSheets = "sheets"
	SourceXLSX   = "xlsx"
	SourceCSV    = "csv"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	CacheTTL              time.Duration
	GRPCPort              int
	GRPCReflectionEnabled bool
	ReportsDir            string
	SourceKind            string
	SourceDir             string
	CredentialsFile       string
	PreferencesFile       string
	QuestionnaireFile     string
}

// LoadFromEnv loads configuration from environment variables. An empty
// REDIS_ADDR disables the sheet cache.
func LoadFromEnv() *Config {
	portStr := getEnv("GRPC_PORT", "50051")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 50051
	}

	reflectionStr := getEnv("GRPC_REFLECTION_ENABLED", "false")
	reflection, err := strconv.ParseBool(reflectionStr)
	if err != nil {
		reflection = false
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil || ttl <= 0 {
		ttl = 10 * time.Minute
	}

	kind := getEnv("SOURCE_KIND", SourceSheets)
	switch kind {
	case SourceSheets, SourceXLSX, SourceCSV:
	default:
		kind = SourceSheets
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/likert.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		CacheTTL:              ttl,
		GRPCPort:              port,
		GRPCReflectionEnabled: reflection,
		ReportsDir:            getEnv("REPORTS_DIR", "reports"),
		SourceKind:            kind,
		SourceDir:             getEnv("SOURCE_DIR", "."),
		CredentialsFile:       getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		PreferencesFile:       getEnv("PREFERENCES_FILE", "config.json"),
		QuestionnaireFile:     os.Getenv("QUESTIONNAIRE_FILE"),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
