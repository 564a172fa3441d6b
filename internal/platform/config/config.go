package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/subosito/gotenv"
)

// Supported email provider names for EmailConfig.Provider.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderSMTP     = "smtp"
	ProviderLog      = "log"
)

// Config represents the relay configuration structure
type Config struct {
	Server    ServerConfig    `json:"server"`
	App       AppConfig       `json:"app"`
	Email     EmailConfig     `json:"email"`
	RateLimit RateLimitConfig `json:"rateLimit"`
	Redis     RedisConfig     `json:"redis"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name    string `json:"name"`
	OrgName string `json:"orgName"`
	Debug   bool   `json:"debug"`
}

// EmailConfig holds provider selection and credentials
type EmailConfig struct {
	Provider             string `json:"provider"`
	DefaultFrom          string `json:"defaultFrom"`
	ResendAPIKey         string `json:"resendApiKey"`
	PostmarkServerToken  string `json:"postmarkServerToken"`
	PostmarkAccountToken string `json:"postmarkAccountToken"`
	SMTPHost             string `json:"smtpHost"`
	SMTPPort             int    `json:"smtpPort"`
	SMTPUser             string `json:"smtpUser"`
	SMTPPass             string `json:"smtpPass"`
}

// RateLimitConfig holds the global request-rate gate configuration
type RateLimitConfig struct {
	MaxRequests int           `json:"maxRequests"`
	Window      time.Duration `json:"window"`
}

// RedisConfig holds the optional Redis backend for rate-limit counters.
// An empty Address keeps the limiter on in-memory storage.
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit Environment Variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults (if applicable)
func LoadFromEnv() (*Config, error) {
	// godotenv.Load() reads the .env file and loads its values into the
	// environment for this process only if they are not already set,
	// which gives the precedence above. Try the usual locations.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}

	if loadErr != nil {
		// Not an error: the relay can run entirely from real env vars.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host: getEnvOrDefault("HOST", ""),
			Port: getEnvAsInt("PORT", 3000),
		},
		App: AppConfig{
			Name:    getEnvOrDefault("APP_NAME", "mailrelay"),
			OrgName: getEnvOrDefault("ORG_NAME", "Telar"),
			Debug:   getEnvAsBool("DEBUG", false),
		},
		Email: EmailConfig{
			Provider:             getEnvOrDefault("EMAIL_PROVIDER", ProviderLog),
			DefaultFrom:          getEnvOrDefault("DEFAULT_FROM_EMAIL", "noreply@telar.dev"),
			ResendAPIKey:         getEnvOrDefault("RESEND_API_KEY", ""),
			PostmarkServerToken:  getEnvOrDefault("POSTMARK_SERVER_TOKEN", ""),
			PostmarkAccountToken: getEnvOrDefault("POSTMARK_ACCOUNT_TOKEN", ""),
			SMTPHost:             getEnvOrDefault("SMTP_HOST", ""),
			SMTPPort:             getEnvAsInt("SMTP_PORT", 587),
			SMTPUser:             getEnvOrDefault("SMTP_USER", ""),
			SMTPPass:             getEnvOrDefault("SMTP_PASS", ""),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
			Window:      getEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Redis: RedisConfig{
			Address:      getEnvOrDefault("REDIS_ADDRESS", ""),
			Password:     getEnvOrDefault("REDIS_PASSWORD", ""),
			Database:     getEnvAsInt("REDIS_DATABASE", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			MaxConnAge:   time.Duration(getEnvAsInt("REDIS_MAX_CONN_AGE", 300)) * time.Second,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	// Helper to get a value from the map or a default.
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	}

	// Helper to get an integer value from the map or a default.
	getInt := func(key string, defaultValue int) int {
		if value, exists := envMap[key]; exists {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	// Helper to get a boolean value from the map or a default.
	getBool := func(key string, defaultValue bool) bool {
		if value, exists := envMap[key]; exists {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}

	// Helper to get a duration value from the map or a default.
	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, exists := envMap[key]; exists {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host: get("HOST", ""),
			Port: getInt("PORT", 3000),
		},
		App: AppConfig{
			Name:    get("APP_NAME", "mailrelay"),
			OrgName: get("ORG_NAME", "Telar"),
			Debug:   getBool("DEBUG", false),
		},
		Email: EmailConfig{
			Provider:             get("EMAIL_PROVIDER", ProviderLog),
			DefaultFrom:          get("DEFAULT_FROM_EMAIL", "noreply@telar.dev"),
			ResendAPIKey:         get("RESEND_API_KEY", ""),
			PostmarkServerToken:  get("POSTMARK_SERVER_TOKEN", ""),
			PostmarkAccountToken: get("POSTMARK_ACCOUNT_TOKEN", ""),
			SMTPHost:             get("SMTP_HOST", ""),
			SMTPPort:             getInt("SMTP_PORT", 587),
			SMTPUser:             get("SMTP_USER", ""),
			SMTPPass:             get("SMTP_PASS", ""),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getInt("RATE_LIMIT_MAX_REQUESTS", 10),
			Window:      getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Redis: RedisConfig{
			Address:      get("REDIS_ADDRESS", ""),
			Password:     get("REDIS_PASSWORD", ""),
			Database:     getInt("REDIS_DATABASE", 0),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 5),
			MaxConnAge:   time.Duration(getInt("REDIS_MAX_CONN_AGE", 300)) * time.Second,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific dotenv file without
// touching the process environment. Useful for tooling and tests that
// point at fixture files.
func LoadFromFile(path string) (*Config, error) {
	env, err := gotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return LoadFromMap(env)
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Server.Port))
	}

	if strings.TrimSpace(c.Email.DefaultFrom) == "" {
		errors = append(errors, "DEFAULT_FROM_EMAIL is required")
	}

	validProviders := []string{ProviderResend, ProviderPostmark, ProviderSMTP, ProviderLog}
	if !contains(validProviders, c.Email.Provider) {
		errors = append(errors, fmt.Sprintf("EMAIL_PROVIDER must be one of: %s", strings.Join(validProviders, ", ")))
	}

	switch c.Email.Provider {
	case ProviderResend:
		if strings.TrimSpace(c.Email.ResendAPIKey) == "" {
			errors = append(errors, "RESEND_API_KEY is required when EMAIL_PROVIDER is resend")
		}
	case ProviderPostmark:
		if strings.TrimSpace(c.Email.PostmarkServerToken) == "" {
			errors = append(errors, "POSTMARK_SERVER_TOKEN is required when EMAIL_PROVIDER is postmark")
		}
	case ProviderSMTP:
		if strings.TrimSpace(c.Email.SMTPHost) == "" {
			errors = append(errors, "SMTP_HOST is required when EMAIL_PROVIDER is smtp")
		}
		if c.Email.SMTPPort < 1 || c.Email.SMTPPort > 65535 {
			errors = append(errors, fmt.Sprintf("SMTP_PORT must be between 1 and 65535, got %d", c.Email.SMTPPort))
		}
	}

	if c.RateLimit.MaxRequests < 1 {
		errors = append(errors, "RATE_LIMIT_MAX_REQUESTS must be at least 1")
	}
	if c.RateLimit.Window <= 0 {
		errors = append(errors, "RATE_LIMIT_WINDOW must be a positive duration")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
