package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Server      ServerConfig      `toml:"server"`
	Search      SearchConfig      `toml:"search"`
	Client      ClientConfig      `toml:"client"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	YouTube YouTubeConfig `toml:"youtube"`
}

// YouTubeConfig contains YouTube Data API credentials.
type YouTubeConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// ServerConfig contains HTTP server settings for the aggregator service.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SearchConfig tunes how participant preferences are expanded into
// provider queries.
type SearchConfig struct {
	// MaxResults caps each individual search. Kept generous to compensate
	// for videos the player later rejects.
	MaxResults int `toml:"max_results"`
	// AgeCutoff splits participants into the "current trends" and
	// "all-time classics" framings.
	AgeCutoff int `toml:"age_cutoff"`
	// RegionTerm biases every query toward a target region.
	RegionTerm string `toml:"region_term"`
	// RateLimit is the maximum number of provider requests per second.
	RateLimit float64 `toml:"rate_limit"`
}

// ClientConfig contains settings for the playback client.
type ClientConfig struct {
	ServerURL string `toml:"server_url"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// The YOUTUBE_API_KEY environment variable, when set, overrides the key from
// the file so deployments can keep credentials out of the config entirely.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyEnvOverrides(&config)
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the
// embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	applyEnvOverrides(&config)
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the
// embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func applyEnvOverrides(config *Config) {
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		config.Credentials.YouTube.APIKey = key
	}
}
