package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the API service
type Config struct {
	// Server
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	BasePath    string `yaml:"base_path"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Optional backing services. Empty disables the integration.
	RedisURL     string `yaml:"redis_url"`
	NATSURL      string `yaml:"nats_url"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`

	// Simulated model latency for the mock routes
	MockEvaluateDelay time.Duration `yaml:"mock_evaluate_delay"`
	MockGenerateDelay time.Duration `yaml:"mock_generate_delay"`

	// RandomSeed fixes the randomness of the heuristic engines. Zero seeds from the clock.
	RandomSeed uint64 `yaml:"random_seed"`

	// Rate limiting for the model-backed routes
	RateLimitMax    int           `yaml:"rate_limit_max"`
	RateLimitRefill int           `yaml:"rate_limit_refill"`
	RateLimitPeriod time.Duration `yaml:"rate_limit_period"`
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8000"),
		Environment:       getEnv("GO_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		BasePath:          strings.TrimSuffix(getEnv("BASE_PATH", ""), "/"),
		AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RedisURL:          getEnv("REDIS_URL", ""),
		NATSURL:           getEnv("NATS_URL", ""),
		OTLPEndpoint:      getEnv("OTLP_ENDPOINT", ""),
		MockEvaluateDelay: getEnvDuration("MOCK_EVALUATE_DELAY", 1500*time.Millisecond),
		MockGenerateDelay: getEnvDuration("MOCK_GENERATE_DELAY", 2*time.Second),
		RandomSeed:        uint64(getEnvInt("RANDOM_SEED", 0)),
		RateLimitMax:      getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitRefill:   getEnvInt("RATE_LIMIT_REFILL", 10),
		RateLimitPeriod:   getEnvDuration("RATE_LIMIT_PERIOD", time.Minute),
	}
}

// LoadFile reads the environment configuration and overlays the YAML file at path.
// Keys missing from the file keep their environment value.
func LoadFile(path string) (*Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.BasePath = strings.TrimSuffix(cfg.BasePath, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.MockEvaluateDelay < 0 || c.MockGenerateDelay < 0 {
		return fmt.Errorf("mock delays must not be negative")
	}
	if c.RateLimitMax <= 0 || c.RateLimitRefill <= 0 || c.RateLimitPeriod <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs in release mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
