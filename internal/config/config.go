package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is built once at startup and passed to every constructor that needs it.
type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		Mode               string   `mapstructure:"mode"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	} `mapstructure:"server"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Backend struct {
		BaseURL       string        `mapstructure:"base_url"`
		PublicBaseURL string        `mapstructure:"public_base_url"`
		Timeout       time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`

	DynamoDB struct {
		Region          string `mapstructure:"region"`
		Endpoint        string `mapstructure:"endpoint"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		DraftsTable     string `mapstructure:"drafts_table"`
	} `mapstructure:"dynamodb"`

	Redis struct {
		Addr      string        `mapstructure:"addr"`
		Password  string        `mapstructure:"password"`
		DB        int           `mapstructure:"db"`
		LookupTTL time.Duration `mapstructure:"lookup_ttl"`
	} `mapstructure:"redis"`

	Drafts struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"drafts"`

	Tracker struct {
		Timezone string `mapstructure:"timezone"`
		Locale   string `mapstructure:"locale"`
	} `mapstructure:"tracker"`
}

// env names kept compatible with the AWS SDK and docker-compose files.
var envBindings = map[string]string{
	"server.port":                 "PORT",
	"server.mode":                 "GIN_MODE",
	"server.cors_allowed_origins": "CORS_ALLOWED_ORIGINS",
	"log.level":                   "LOG_LEVEL",
	"backend.base_url":            "BACKEND_URL",
	"backend.public_base_url":     "BACKEND_PUBLIC_URL",
	"backend.timeout":             "BACKEND_TIMEOUT",
	"dynamodb.region":             "AWS_REGION",
	"dynamodb.endpoint":           "DYNAMODB_ENDPOINT",
	"dynamodb.access_key_id":      "AWS_ACCESS_KEY_ID",
	"dynamodb.secret_access_key":  "AWS_SECRET_ACCESS_KEY",
	"dynamodb.drafts_table":       "IMPORT_DRAFTS_TABLE",
	"redis.addr":                  "REDIS_ADDR",
	"redis.password":              "REDIS_PASSWORD",
	"redis.db":                    "REDIS_DB",
	"redis.lookup_ttl":            "LOOKUP_CACHE_TTL",
	"drafts.ttl":                  "DRAFT_TTL",
	"tracker.timezone":            "TRACKER_TIMEZONE",
	"tracker.locale":              "TRACKER_LOCALE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("backend.base_url", "http://localhost:8000/api")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.drafts_table", "import_drafts")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.lookup_ttl", 5*time.Minute)
	v.SetDefault("drafts.ttl", 24*time.Hour)
	v.SetDefault("tracker.timezone", "Local")
	v.SetDefault("tracker.locale", "es")
}

// Load reads .env (if present), an optional config file and the environment.
// CONFIG_FILE points to the file; configs/config.yaml is tried otherwise.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("config_file", "CONFIG_FILE"); err != nil {
		return nil, err
	}
	if f := v.GetString("config_file"); f != "" {
		v.SetConfigFile(f)
	}

	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	cfg.Server.CorsAllowedOrigins = splitOrigins(cfg.Server.CorsAllowedOrigins)
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	if cfg.Backend.PublicBaseURL == "" {
		cfg.Backend.PublicBaseURL = strings.TrimSuffix(cfg.Backend.BaseURL, "/api")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base url is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}
	if c.Drafts.TTL <= 0 {
		return fmt.Errorf("draft ttl must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("tracker timezone: %w", err)
	}
	return nil
}

// Location resolves the time zone used for delivery countdowns.
func (c *Config) Location() (*time.Location, error) {
	if c.Tracker.Timezone == "" || c.Tracker.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Tracker.Timezone)
}

// The config file is optional.
func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// splitOrigins accepts both a YAML list and a comma separated env value.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
