package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "conslaw"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/conslaw by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/conslaw/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/conslaw/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// LawsFilePath returns the full path to the laws.yaml file.
// Returns ~/.config/conslaw/laws.yaml by default.
func LawsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "laws.yaml")
}

// DataPath resolves a file name against Data.Dir.
// Absolute paths are returned unchanged.
func (c *Config) DataPath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Data.Dir, file)
}

// IUCNPath returns the location of the IUCN status file.
func (c *Config) IUCNPath() string {
	return c.DataPath(c.Data.IUCNFile)
}

// VNRedListPath returns the location of the Vietnam Red List status file.
func (c *Config) VNRedListPath() string {
	return c.DataPath(c.Data.VNRedListFile)
}
