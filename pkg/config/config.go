package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required fields
	SessionSecret string `mapstructure:"session_secret"`

	// Optional storage settings
	DBPath string `mapstructure:"db_path"`

	// Optional HTTP settings
	HTTPHost string `mapstructure:"http_host"`
	HTTPPort int    `mapstructure:"http_port"`

	// Static paths
	ConfigPath string
}

const (
	DefaultConfigPath = "config.yml"
	DefaultDBPath     = "firstsite.sqlite3"
	DefaultHTTPHost   = "0.0.0.0"
	DefaultHTTPPort   = 8080
)

func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults. session_secret is registered with an empty default so
	// the key exists for Unmarshal when it is supplied via the environment.
	viper.SetDefault("session_secret", "")
	viper.SetDefault("db_path", DefaultDBPath)
	viper.SetDefault("http_host", DefaultHTTPHost)
	viper.SetDefault("http_port", DefaultHTTPPort)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("FIRSTSITE")

	// The config file is optional unless explicitly requested; the session
	// secret can come from the environment alone.
	if err := viper.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("session_secret is required (set it in %s or via FIRSTSITE_SESSION_SECRET)", c.ConfigPath)
	}

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535")
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("FIRSTSITE_DEV_MODE") == "1"
}
