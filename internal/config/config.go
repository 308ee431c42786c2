package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// API token guarding mutating endpoints
	APITokenSecret string `mapstructure:"API_TOKEN_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Forecast defaults
	DefaultSims      int   `mapstructure:"DEFAULT_SIMS"`
	DefaultSeed      int64 `mapstructure:"DEFAULT_SEED"`
	ForecastWorkers  int   `mapstructure:"FORECAST_WORKERS"`
	SolverTimeLimitS int   `mapstructure:"SOLVER_TIME_LIMIT_SEC"`

	// Match-data providers
	FootballDataAPIKey  string `mapstructure:"FOOTBALL_DATA_API_KEY"`
	FootballDataBaseURL string `mapstructure:"FOOTBALL_DATA_BASE_URL"`
	APIFootballAPIKey   string `mapstructure:"APIFOOTBALL_API_KEY"`
	APIFootballBaseURL  string `mapstructure:"APIFOOTBALL_BASE_URL"`
	DefaultSeason       int    `mapstructure:"DEFAULT_SEASON"`
	TeamNameMapPath     string `mapstructure:"TEAM_NAME_MAP_PATH"`

	// Snapshot publishing
	GistID       string `mapstructure:"GIST_ID"`
	GistFilename string `mapstructure:"GIST_FILENAME"`
	GitHubToken  string `mapstructure:"GITHUB_TOKEN"`
	S3Bucket     string `mapstructure:"S3_BUCKET"`
	S3Region     string `mapstructure:"S3_REGION"`
	S3Public     bool   `mapstructure:"S3_PUBLIC"`

	// Telegram bot
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	BotStatePath     string `mapstructure:"BOT_STATE_PATH"`
	BotCachePath     string `mapstructure:"BOT_CACHE_PATH"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "league_tracker")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// API token defaults
	viper.SetDefault("API_TOKEN_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Forecast defaults
	viper.SetDefault("DEFAULT_SIMS", 20000)
	viper.SetDefault("DEFAULT_SEED", 12345)
	viper.SetDefault("FORECAST_WORKERS", 0)
	viper.SetDefault("SOLVER_TIME_LIMIT_SEC", 30)

	// Provider defaults
	viper.SetDefault("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org/v4")
	viper.SetDefault("APIFOOTBALL_BASE_URL", "https://v3.football.api-sports.io")
	viper.SetDefault("DEFAULT_SEASON", 0)
	viper.SetDefault("TEAM_NAME_MAP_PATH", "")

	// Publisher defaults
	viper.SetDefault("GIST_FILENAME", "snapshot.json")
	viper.SetDefault("S3_REGION", "")
	viper.SetDefault("S3_PUBLIC", true)

	// Bot defaults
	viper.SetDefault("BOT_STATE_PATH", "league_state.json")
	viper.SetDefault("BOT_CACHE_PATH", "last_status_cache.json")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.APITokenSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("API_TOKEN_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.DefaultSims <= 0 {
		return fmt.Errorf("DEFAULT_SIMS must be positive")
	}

	return nil
}

// SolverTimeLimit returns the per-solve wall-clock bound for the certifier.
func (c *Config) SolverTimeLimit() time.Duration {
	return time.Duration(c.SolverTimeLimitS) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
