package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Storage struct {
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"storage"`

	AI struct {
		GeminiAPIKey string `mapstructure:"gemini_api_key"`
		Model        string `mapstructure:"model"`
	} `mapstructure:"ai"`

	Backup struct {
		Enabled         bool   `mapstructure:"enabled"`
		Endpoint        string `mapstructure:"endpoint"`
		Region          string `mapstructure:"region"`
		Bucket          string `mapstructure:"bucket"`
		AccessKey       string `mapstructure:"access_key"`
		SecretKey       string `mapstructure:"secret_key"`
		IntervalMinutes int    `mapstructure:"interval_minutes"`
	} `mapstructure:"backup"`
}

// BackupInterval returns the configured snapshot interval.
func (c *Config) BackupInterval() time.Duration {
	return time.Duration(c.Backup.IntervalMinutes) * time.Minute
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type", "Accept"})
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("backup.region", "auto")
	v.SetDefault("backup.interval_minutes", 360)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Environment overrides
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.AI.GeminiAPIKey = key
	}

	// Backup credentials only come from the environment
	if access := os.Getenv("BACKUP_ACCESS_KEY"); access != "" {
		cfg.Backup.AccessKey = access
	}
	if secret := os.Getenv("BACKUP_SECRET_KEY"); secret != "" {
		cfg.Backup.SecretKey = secret
	}
	if bucket := os.Getenv("BACKUP_BUCKET"); bucket != "" {
		cfg.Backup.Bucket = bucket
	}
	if endpoint := os.Getenv("BACKUP_ENDPOINT"); endpoint != "" {
		cfg.Backup.Endpoint = endpoint
	}

	return &cfg
}
