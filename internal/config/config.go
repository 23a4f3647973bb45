package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidThemeHours           = errors.New("invalid theme hours")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`                // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`                  // Telegram API token loaded from environment
	QuestionBankPath string `mapstructure:"question_bank_path"` // optional JSON question bank, compiled-in bank if empty
	Bot              Bot    `mapstructure:"bot"`                // telegram bot section
	Theme            Theme  `mapstructure:"theme"`              // day/night theme section
}

// Bot contains Telegram client parameters.
type Bot struct {
	Debug         bool `mapstructure:"debug"`          // log raw Telegram API traffic
	UpdateTimeout int  `mapstructure:"update_timeout"` // long polling timeout in seconds
}

// Theme contains time-of-day theme parameters.
type Theme struct {
	DayStartHour int    `mapstructure:"day_start_hour"` // first hour of the day theme
	DayEndHour   int    `mapstructure:"day_end_hour"`   // first hour of the night theme
	RefreshSpec  string `mapstructure:"refresh_spec"`   // cron spec for re-checking the theme
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Load .env into the process environment if present.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("question_bank_path", "")
	v.SetDefault("bot.debug", false)
	v.SetDefault("bot.update_timeout", 60)
	v.SetDefault("theme.day_start_hour", 6)
	v.SetDefault("theme.day_end_hour", 18)
	v.SetDefault("theme.refresh_spec", "@every 5m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

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

	if err := cfg.Theme.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (t Theme) validate() error {
	if t.DayStartHour < 0 || t.DayEndHour > 24 || t.DayStartHour >= t.DayEndHour {
		return fmt.Errorf("%w: day %d-%d", ErrInvalidThemeHours, t.DayStartHour, t.DayEndHour)
	}
	return nil
}
