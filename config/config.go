package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	Logger LoggerConfig

	// Voice task parsing
	Parser ParserConfig
	Review ReviewConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ParserConfig struct {
	Timezone  string // IANA name; empty keeps the reference time's zone
	CacheSize int    // 0 disables the parse cache
	CacheTTL  time.Duration
}

type ReviewConfig struct {
	TitleMaxLength int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/voicetask/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/voicetask/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper applies env overrides and defaults to v and builds the Config.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Parser.Timezone = v.GetString("parser.timezone")
	cfg.Parser.CacheSize = v.GetInt("parser.cache_size")
	cfg.Parser.CacheTTL = v.GetDuration("parser.cache_ttl")

	cfg.Review.TitleMaxLength = v.GetInt("review.title_max_length")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("parser.timezone", "")
	v.SetDefault("parser.cache_size", 256)
	v.SetDefault("parser.cache_ttl", "10m")

	v.SetDefault("review.title_max_length", 200)
}

func validate(cfg *Config) error {
	if cfg.Parser.CacheSize < 0 {
		return fmt.Errorf("parser.cache_size must not be negative, got %d", cfg.Parser.CacheSize)
	}
	if cfg.Parser.CacheTTL < 0 {
		return fmt.Errorf("parser.cache_ttl must not be negative, got %s", cfg.Parser.CacheTTL)
	}
	if cfg.Review.TitleMaxLength <= 0 {
		return fmt.Errorf("review.title_max_length must be positive, got %d", cfg.Review.TitleMaxLength)
	}
	return nil
}
