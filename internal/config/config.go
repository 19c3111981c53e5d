package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Tidal API settings
	Tidal TidalConfig
}

// TidalConfig holds Tidal specific configuration
type TidalConfig struct {
	Token    string // Application token
	Username string // Default login username
	BaseURL  string // Alternate endpoint, empty for the production API
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("UNDERTOW")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		Tidal: TidalConfig{
			Token:    v.GetString("tidal.token"),
			Username: v.GetString("tidal.username"),
			BaseURL:  v.GetString("tidal.base_url"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "undertow")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file.
//
// Sessions are never written here: a session is short-lived and is handed
// back to the caller of the login exchange instead of being persisted.
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("tidal.token", c.Tidal.Token)
	v.Set("tidal.username", c.Tidal.Username)
	v.Set("tidal.base_url", c.Tidal.BaseURL)

	// Write to file
	return v.WriteConfigAs(configFile)
}
