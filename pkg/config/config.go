// Package config provides configuration management for conslaw.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - IUCN: token, base_url, delay, timeout
//   - VNRedList: base_url, delay, timeout, user_agent
//   - Data: dir, iucn_file, vnredlist_file
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Yes (skip interactive confirmations)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CONSLAW_ prefix with underscores for nesting:
//
//	CONSLAW_IUCN_TOKEN=secret
//	CONSLAW_VNREDLIST_DELAY=2s
//	CONSLAW_DATA_DIR=src/lib
//	CONSLAW_LOG_LEVEL=debug
//
// IUCN_API_TOKEN is also accepted for the IUCN token.
package config

import "time"

// PlaceholderToken is used when no IUCN API token is configured.
const PlaceholderToken = "YOUR_API_TOKEN_HERE"

// Config represents the complete conslaw configuration.
type Config struct {
	// IUCN contains settings of the IUCN Red List API client.
	IUCN IUCNConfig `mapstructure:"iucn" yaml:"iucn"`

	// VNRedList contains settings of the Vietnam Red List website client.
	VNRedList VNRedListConfig `mapstructure:"vnredlist" yaml:"vnredlist"`

	// Data describes where law data files and status files reside.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Yes skips interactive confirmations.
	Yes bool

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// IUCNConfig contains IUCN Red List API v4 settings.
type IUCNConfig struct {
	// Token is the bearer token issued by
	// https://api.iucnredlist.org/users/sign_up
	Token string `mapstructure:"token" yaml:"token"`

	// BaseURL of the API, without trailing slash.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Delay between consecutive requests.
	Delay time.Duration `mapstructure:"delay" yaml:"delay"`

	// Timeout of a single request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// VNRedListConfig contains Vietnam Red List website settings.
type VNRedListConfig struct {
	// BaseURL of the website, without trailing slash.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Delay between consecutive requests.
	Delay time.Duration `mapstructure:"delay" yaml:"delay"`

	// Timeout of a single request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// UserAgent header sent with every request.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// DataConfig points to law data files and generated status files.
type DataConfig struct {
	// Dir is the directory with law JSON files. Relative file names from
	// laws.yaml and status file names are resolved against it.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// IUCNFile is the name of the IUCN status output file.
	IUCNFile string `mapstructure:"iucn_file" yaml:"iucn_file"`

	// VNRedListFile is the name of the Vietnam Red List output file.
	VNRedListFile string `mapstructure:"vnredlist_file" yaml:"vnredlist_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		IUCN: IUCNConfig{
			Token:   PlaceholderToken,
			BaseURL: "https://api.iucnredlist.org/api/v4",
			Delay:   500 * time.Millisecond,
			Timeout: 10 * time.Second,
		},
		VNRedList: VNRedListConfig{
			BaseURL: "http://vnredlist.vast.vn",
			Delay:   1500 * time.Millisecond,
			Timeout: 30 * time.Second,
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
				"AppleWebKit/537.36",
		},
		Data: DataConfig{
			Dir:           ".",
			IUCNFile:      "iucn_status.json",
			VNRedListFile: "vnredlist_status.json",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}

	return res
}

// HasToken returns true if a real IUCN token was provided.
func (c *Config) HasToken() bool {
	return c.IUCN.Token != "" && c.IUCN.Token != PlaceholderToken
}
