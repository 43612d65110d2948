package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Directory DirectoryConfig
	UI        UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// DirectoryConfig holds lookup settings.
type DirectoryConfig struct {
	// FetchDelay is the simulated latency applied to demo-mode lookups.
	FetchDelay time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// AccentDefault is shown on the home screen until a color is picked.
	AccentDefault string
}

// Load reads configuration from file and env. Env var overrides use prefix CREWBOOK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "crewbook", "crewbook.db"))
	v.SetDefault("directory.fetch_delay", "1500ms")
	v.SetDefault("ui.accent_default", "none")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CREWBOOK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "crewbook"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CREWBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
