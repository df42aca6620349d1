package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env               string   `mapstructure:"env"`                 // current application environment (local, dev, production etc)
	TelegramAPIToken  string   `mapstructure:"-"`                   // Telegram API token loaded from environment
	QuestionsJSONPath string   `mapstructure:"questions_json_path"` // path to JSON file with quiz questions
	ImagesDir         string   `mapstructure:"images_dir"`          // directory with movie posters
	PlaceholderImage  string   `mapstructure:"placeholder_image"`   // image shown when a poster is missing
	Quiz              Quiz     `mapstructure:"quiz"`                // quiz flow configuration section
	Telegram          Telegram `mapstructure:"telegram"`            // Telegram client configuration section
	DB                DB       `mapstructure:"database"`            // database configuration section
}

// Quiz contains quiz flow parameters.
type Quiz struct {
	FeedbackDelay   time.Duration `mapstructure:"feedback_delay"`   // pause between an answer and the next question
	SessionTTL      time.Duration `mapstructure:"session_ttl"`      // idle time after which a session is evicted
	JanitorSchedule string        `mapstructure:"janitor_schedule"` // cron spec of the idle session cleanup
}

// Telegram contains Telegram client options.
type Telegram struct {
	Debug bool `mapstructure:"debug"` // log raw Bot API requests
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, real environment variables still apply.
	_ = godotenv.Load()

	return load("./config")
}

func load(configPath string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions_json_path", "assets/data/questions.json")
	v.SetDefault("images_dir", "assets/images")
	v.SetDefault("placeholder_image", "assets/images/placeholder.jpg")
	v.SetDefault("quiz.feedback_delay", "1s")
	v.SetDefault("quiz.session_ttl", "24h")
	v.SetDefault("quiz.janitor_schedule", "@every 10m")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("quiz.feedback_delay", "QUIZ_FEEDBACK_DELAY")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Quiz.FeedbackDelay <= 0 {
		return fmt.Errorf("quiz.feedback_delay must be positive: %w", ErrInvalidConfig)
	}
	if c.Quiz.SessionTTL <= 0 {
		return fmt.Errorf("quiz.session_ttl must be positive: %w", ErrInvalidConfig)
	}
	if c.Quiz.JanitorSchedule == "" {
		return fmt.Errorf("quiz.janitor_schedule is empty: %w", ErrInvalidConfig)
	}
	if c.QuestionsJSONPath == "" {
		return fmt.Errorf("questions_json_path is empty: %w", ErrInvalidConfig)
	}
	return nil
}
