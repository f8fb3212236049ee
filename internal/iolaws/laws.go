// Package iolaws reads laws.yaml, the registry of law data files.
package iolaws

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/conslaw/pkg/laws"
	"gopkg.in/yaml.v3"
)

type iolaws struct {
	cfg *config.Config
}

// New creates a loader of laws.yaml from the config directory.
func New(cfg *config.Config) laws.Laws {
	res := iolaws{cfg: cfg}
	return &res
}

// Load reads and validates laws.yaml. Relative data file paths are
// resolved against the data directory.
func (l *iolaws) Load() (*laws.LawsConfig, error) {
	lawsPath := config.LawsFilePath(l.cfg.HomeDir)
	res, err := loadLawsConfig(lawsPath)
	if err != nil {
		return nil, LawsConfigError(lawsPath, err)
	}

	for _, w := range res.Warnings {
		slog.Warn("laws.yaml", "law", w.LawID, "field", w.Field,
			"message", w.Message)
	}

	for i := range res.Laws {
		res.Laws[i].File = l.cfg.DataPath(res.Laws[i].File)
	}
	return res, nil
}

func loadLawsConfig(path string) (*laws.LawsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read laws config file: %w", err)
	}

	var res laws.LawsConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse laws config file: %w", err)
	}

	if err = res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
