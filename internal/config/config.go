package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Rotation rules configuration
	Rotation RotationConfig `toml:"rotation"`

	// Card data API configuration
	API APIConfig `toml:"api"`

	// Card cache configuration
	Cache CacheConfig `toml:"cache"`
}

// RotationConfig controls which regulation table and boundary are used.
type RotationConfig struct {
	NextMark  string `toml:"next_mark"`  // Mark leaving at the next rotation (e.g. "G"); ignored when TableFile is set
	TableFile string `toml:"table_file"` // Optional TOML regulation table override; authoritative, including its next_mark
	MinScore  int    `toml:"min_score"`  // Minimum substitution match score (0-100)
}

// APIConfig contains pokemontcg.io client settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"` // API base URL (empty = default)
	APIKey  string `toml:"api_key"`  // Optional X-Api-Key value
	Timeout string `toml:"timeout"`  // Request timeout (e.g. "30s")
}

// CacheConfig contains card caching settings.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"` // Enable caching
	TTL     string `toml:"ttl"`     // Cache TTL (e.g. "24h")
	MaxSets int    `toml:"max_sets"` // Max cached sets (0 = default)
	DBPath  string `toml:"db_path"` // Path to the sqlite card store
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Rotation: RotationConfig{
			NextMark:  "G",
			TableFile: "",
			MinScore:  30,
		},
		API: APIConfig{
			BaseURL: "",
			APIKey:  "",
			Timeout: "30s",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     "24h",
			MaxSets: 16,
			DBPath:  "",
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".ptcg-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultDBPath returns the default location of the sqlite card store.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ptcg-companion", "cards.db"), nil
}

// Load loads the configuration from disk. Returns default config if the
// file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if len(c.Rotation.NextMark) != 1 {
		return fmt.Errorf("invalid next rotation mark %q: must be a single letter", c.Rotation.NextMark)
	}

	if c.Rotation.MinScore < 0 || c.Rotation.MinScore > 100 {
		return fmt.Errorf("min score must be in 0-100: %d", c.Rotation.MinScore)
	}

	if c.API.Timeout != "" {
		if _, err := time.ParseDuration(c.API.Timeout); err != nil {
			return fmt.Errorf("invalid API timeout %q: %w", c.API.Timeout, err)
		}
	}

	if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
		return fmt.Errorf("invalid cache TTL %q: %w", c.Cache.TTL, err)
	}

	if c.Cache.MaxSets < 0 {
		return fmt.Errorf("cache max sets cannot be negative: %d", c.Cache.MaxSets)
	}

	return nil
}

// GetCacheTTL returns the cache TTL as a duration.
func (c *Config) GetCacheTTL() (time.Duration, error) {
	return time.ParseDuration(c.Cache.TTL)
}
