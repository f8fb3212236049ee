// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/conslaw/pkg/species"
)

// TestConfig returns a configuration whose home and data directories are
// temporary, so tests never touch ~/.config/conslaw or real data files.
// Config and log directories are created, config.yaml and laws.yaml
// are written from templates.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("skipping file system test in short mode")
//	    }
//	    cfg := iotesting.TestConfig(t)
//	    // ... write data files to cfg.Data.Dir
//	}
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	homeDir := t.TempDir()
	dataDir := filepath.Join(homeDir, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("Failed to create data dir: %v", err)
	}

	for _, fn := range []func(string) error{
		iofs.EnsureDirs,
		iofs.EnsureConfigFile,
		iofs.EnsureLawsFile,
	} {
		if err := fn(homeDir); err != nil {
			t.Fatalf("Failed to prepare home dir: %v", err)
		}
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(homeDir),
		config.OptDataDir(dataDir),
	})
	return cfg
}

// WriteLawsYAML replaces laws.yaml in the config directory of homeDir.
//
// Usage:
//
//	iotesting.WriteLawsYAML(t, cfg.HomeDir, `
//	laws:
//	  - id: nd06
//	    file: nd06_2019.json
//	`)
func WriteLawsYAML(t *testing.T, homeDir, content string) {
	t.Helper()

	dir := config.ConfigDir(homeDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	path := config.LawsFilePath(homeDir)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write laws.yaml: %v", err)
	}
}

// WriteSpecies writes records as a JSON data file.
func WriteSpecies(t *testing.T, path string, recs ...species.Species) {
	t.Helper()

	if err := iofs.WriteJSON(path, recs, 2); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
