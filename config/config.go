package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	ServerHost string `mapstructure:"server_host"`
	ServerPort string `mapstructure:"server_port"`

	// Database
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_ssl_mode"`

	// Redis (optional; empty addr disables caching)
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	// External collaborators
	OpenWeatherAPIKey string `mapstructure:"openweather_api_key"`
	OCRAPIKey         string `mapstructure:"ocr_api_key"`

	// Application
	Env         string `mapstructure:"env"`
	LogLevel    string `mapstructure:"log_level"`
	DatasetDir  string `mapstructure:"dataset_dir"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

// LoadConfig reads configuration from the environment (and a .env file
// when present), applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	// .env is a development convenience; absence is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	bindings := map[string]string{
		"server_host":         "SERVER_HOST",
		"server_port":         "SERVER_PORT",
		"db_host":             "DB_HOST",
		"db_port":             "DB_PORT",
		"db_user":             "DB_USER",
		"db_password":         "DB_PASSWORD",
		"db_name":             "DB_NAME",
		"db_ssl_mode":         "DB_SSL_MODE",
		"redis_addr":          "REDIS_ADDR",
		"redis_password":      "REDIS_PASSWORD",
		"redis_db":            "REDIS_DB",
		"openweather_api_key": "OPENWEATHER_API_KEY",
		"ocr_api_key":         "OCR_API_KEY",
		"env":                 "ENV",
		"log_level":           "LOG_LEVEL",
		"dataset_dir":         "DATASET_DIR",
		"cors_origins":        "CORS_ORIGINS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "ayushaahar")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("redis_db", 0)
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("dataset_dir", "datasets")
	v.SetDefault("cors_origins", "*")
}

func validate(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.DatasetDir == "" {
		return fmt.Errorf("dataset dir is required")
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Origins splits the configured CORS origins.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
