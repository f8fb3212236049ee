package config

import (
	"strings"
	"time"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptIUCNToken sets the IUCN Red List API bearer token.
func OptIUCNToken(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("IUCN Token", s) {
			c.IUCN.Token = s
		}
	}
}

// OptIUCNBaseURL sets the IUCN API base URL.
func OptIUCNBaseURL(s string) Option {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidURL("IUCN Base URL", s) {
			c.IUCN.BaseURL = s
		}
	}
}

// OptIUCNDelay sets the pause between consecutive IUCN requests.
// Zero disables the pause.
func OptIUCNDelay(d time.Duration) Option {
	return func(c *Config) {
		if isValidDelay("IUCN Delay", d) {
			c.IUCN.Delay = d
		}
	}
}

// OptIUCNTimeout sets the timeout of one IUCN request.
func OptIUCNTimeout(d time.Duration) Option {
	return func(c *Config) {
		if isValidTimeout("IUCN Timeout", d) {
			c.IUCN.Timeout = d
		}
	}
}

// OptVNRedListBaseURL sets the Vietnam Red List website URL.
func OptVNRedListBaseURL(s string) Option {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	return func(c *Config) {
		if isValidURL("VNRedList Base URL", s) {
			c.VNRedList.BaseURL = s
		}
	}
}

// OptVNRedListDelay sets the pause between consecutive website requests.
// Zero disables the pause.
func OptVNRedListDelay(d time.Duration) Option {
	return func(c *Config) {
		if isValidDelay("VNRedList Delay", d) {
			c.VNRedList.Delay = d
		}
	}
}

// OptVNRedListTimeout sets the timeout of one website request.
func OptVNRedListTimeout(d time.Duration) Option {
	return func(c *Config) {
		if isValidTimeout("VNRedList Timeout", d) {
			c.VNRedList.Timeout = d
		}
	}
}

// OptVNRedListUserAgent sets the User-Agent header for website requests.
func OptVNRedListUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("VNRedList User Agent", s) {
			c.VNRedList.UserAgent = s
		}
	}
}

// OptDataDir sets the directory with law data files.
func OptDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Dir", s) {
			c.Data.Dir = s
		}
	}
}

// OptDataIUCNFile sets the IUCN status file name.
func OptDataIUCNFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data IUCN File", s) {
			c.Data.IUCNFile = s
		}
	}
}

// OptDataVNRedListFile sets the Vietnam Red List status file name.
func OptDataVNRedListFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data VNRedList File", s) {
			c.Data.VNRedListFile = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptYes skips interactive confirmations.
// Runtime-only field - not in ToOptions().
func OptYes(b bool) Option {
	return func(c *Config) {
		c.Yes = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
