package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type UpstreamConfig struct {
	BaseURL         string
	Token           string
	UserAgent       string
	AgencyID        string
	AgencyAgents    []string
	BrandNames      []string
	DefaultPageSize int
	MaxPageSize     int
	MaxFetchPages   int
	TimeoutSeconds  int
	RetryAttempts   int
	RetryBackoffMs  int
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
}

type DBconfig struct {
	URL string
}

type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName        string
	Upstream       UpstreamConfig
	Rest           RESTconfig
	Database       DBconfig
	RabbitMQ       RabbitMQConfig
	FluentBit      FluentBitConfig
	StdoutLogger   StdoutLogConfig
	HeuristicsFile string
}

// LoadConfig reads configuration from environment variables, optionally
// seeded from a .env file. A missing .env file is not fatal.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v. Continuing with process environment.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listings-gateway")

	cfg.Upstream.BaseURL = os.Getenv("UPSTREAM_BASE_URL")
	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL environment variable is required")
	}
	cfg.Upstream.Token = os.Getenv("UPSTREAM_API_TOKEN")
	if cfg.Upstream.Token == "" {
		return nil, fmt.Errorf("UPSTREAM_API_TOKEN environment variable is required")
	}
	cfg.Upstream.UserAgent = getEnvAsString("UPSTREAM_USER_AGENT", "listings-gateway/1.0")
	cfg.Upstream.AgencyID = getEnvAsString("AGENCY_ID", "")
	cfg.Upstream.AgencyAgents = getEnvAsSlice("AGENCY_AGENTS")
	cfg.Upstream.BrandNames = getEnvAsSlice("AGENCY_BRAND_NAMES")
	cfg.Upstream.DefaultPageSize = getEnvAsInt("DEFAULT_PAGE_SIZE", 12)
	cfg.Upstream.MaxPageSize = getEnvAsInt("MAX_PAGE_SIZE", 100)
	cfg.Upstream.MaxFetchPages = getEnvAsInt("MAX_FETCH_PAGES", 10)
	cfg.Upstream.TimeoutSeconds = getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15)
	cfg.Upstream.RetryAttempts = getEnvAsInt("UPSTREAM_RETRY_ATTEMPTS", 3)
	cfg.Upstream.RetryBackoffMs = getEnvAsInt("UPSTREAM_RETRY_BACKOFF_MS", 500)

	cfg.Rest.PORT = getEnvAsString("PORT", "8084")
	cfg.Rest.AllowedOrigins = getEnvAsSlice("ALLOWED_ORIGINS")
	if len(cfg.Rest.AllowedOrigins) == 0 {
		cfg.Rest.AllowedOrigins = []string{"http://localhost:3000"}
	}

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			log.Println("WARNING: RABBITMQ_ENABLED is true, but RABBITMQ_URL is not set. Disabling RabbitMQ.")
			cfg.RabbitMQ.Enabled = false
		}
		cfg.RabbitMQ.Exchange = getEnvAsString("RABBITMQ_EXCHANGE", "enquiries")
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	cfg.HeuristicsFile = getEnvAsString("HEURISTICS_FILE", "")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsSlice parses a comma-separated environment variable.
func getEnvAsSlice(key string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
