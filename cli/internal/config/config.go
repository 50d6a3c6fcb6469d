// Package config loads CLI configuration from config files, environment
// variables and .env files.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem the CLI reads scripts and config from.
// Swappable for an in-memory fs in tests.
var AppFs = afero.NewOsFs()

// Config holds the CLI configuration.
type Config struct {
	// DatabaseURL is the target connection string.
	DatabaseURL string
	// Provider selects the dialect ("postgres", "mysql", "sqlite",
	// "mssql", "sqlserverce").
	Provider string
	// Engine optionally narrows the target to a concrete variant
	// ("sqlserver2012"); defaults to the provider's generic engine.
	Engine string
	// Driver overrides the database/sql driver name when it differs
	// from the provider's built-in mapping.
	Driver string
	// Debug enables debug logging.
	Debug bool
}

// Load reads configuration from .migrator.yaml (working directory,
// home, or ~/.config/migrator), MIGRATOR_* environment variables, and
// .env files.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".migrator")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "migrator"))

	viper.SetEnvPrefix("MIGRATOR")
	viper.AutomaticEnv()

	viper.SetDefault("provider", "postgres")
	viper.SetDefault("debug", false)

	// Config file is optional.
	_ = viper.ReadInConfig()

	// .env files supply DATABASE_URL in development setups.
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		DatabaseURL: viper.GetString("database_url"),
		Provider:    viper.GetString("provider"),
		Engine:      viper.GetString("engine"),
		Driver:      viper.GetString("driver"),
		Debug:       viper.GetBool("debug"),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	return cfg, nil
}
