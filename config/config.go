package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the service reads from the environment
type Config struct {
	Port      int    `mapstructure:"PORT"`
	GoEnv     string `mapstructure:"GO_ENV"`
	Domain    string `mapstructure:"DOMAIN"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	FixturesDir   string `mapstructure:"FIXTURES_DIR"`
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DATABASE"`

	RedisAddress     string `mapstructure:"REDIS_ADDRESS"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int    `mapstructure:"REDIS_DB"`
	ReportLimitQueue string `mapstructure:"REDIS_QUEUE_FOR_ISSUE_LIMIT"`
	ReportDailyLimit int    `mapstructure:"REPORT_DAILY_LIMIT"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	TokenTTLHours     int    `mapstructure:"TOKEN_TTL_HOURS"`
	CacheTTLSeconds   int    `mapstructure:"CACHE_TTL_SECONDS"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`
	SLAThresholdHours int    `mapstructure:"SLA_THRESHOLD_HOURS"`
}

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

var defaults = map[string]any{
	"PORT":                        8080,
	"GO_ENV":                      "development",
	"DOMAIN":                      "",
	"LOG_LEVEL":                   "info",
	"LOG_FORMAT":                  "console",
	"STORE_BACKEND":               BackendMemory,
	"FIXTURES_DIR":                "",
	"MONGODB_URI":                 "",
	"MONGODB_DATABASE":            "civicpulse",
	"REDIS_ADDRESS":               "",
	"REDIS_PASSWORD":              "",
	"REDIS_DB":                    0,
	"REDIS_QUEUE_FOR_ISSUE_LIMIT": "report-limit",
	"REPORT_DAILY_LIMIT":          10,
	"JWT_SECRET":                  "",
	"TOKEN_TTL_HOURS":             72,
	"CACHE_TTL_SECONDS":           30,
	"SESSION_TTL_MINUTES":         60,
	"CORS_ORIGINS":                "*",
	"SLA_THRESHOLD_HOURS":         72,
}

// Load reads the environment (after godotenv has populated it) on top of the defaults
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		// Unmarshal only sees keys viper knows about, so bind each one explicitly
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	return &cfg, nil
}

// Validate reports every problem at once
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be 1-65535, got %d", c.Port))
	}
	switch c.StoreBackend {
	case BackendMemory:
	case BackendMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required when STORE_BACKEND=mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.StoreBackend))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable is not set"))
	}
	if c.ReportDailyLimit < 1 {
		errs = append(errs, errors.New("REPORT_DAILY_LIMIT must be at least 1"))
	}
	if c.TokenTTLHours < 1 {
		errs = append(errs, errors.New("TOKEN_TTL_HOURS must be at least 1"))
	}
	if c.SLAThresholdHours < 1 {
		errs = append(errs, errors.New("SLA_THRESHOLD_HOURS must be at least 1"))
	}
	return errors.Join(errs...)
}

func (c *Config) Production() bool { return c.GoEnv == "production" }

func (c *Config) TokenTTL() time.Duration { return time.Duration(c.TokenTTLHours) * time.Hour }

func (c *Config) CacheTTL() time.Duration { return time.Duration(c.CacheTTLSeconds) * time.Second }

func (c *Config) SessionTTL() time.Duration { return time.Duration(c.SessionTTLMinutes) * time.Minute }

func (c *Config) SLAThreshold() time.Duration { return time.Duration(c.SLAThresholdHours) * time.Hour }

// AllowedOrigins splits CORS_ORIGINS on commas
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
