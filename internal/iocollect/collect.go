// Package iocollect reads species from law data files and status files.
package iocollect

import (
	"log/slog"

	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/pkg/collect"
	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/gn"
)

// Stats describe one collection.
type Stats struct {
	// Files is the number of files read successfully.
	Files int
	// Skipped is the number of missing or malformed files.
	Skipped int
	// Records is the number of records read, duplicates included.
	Records int
	// Unique is the number of collected species.
	Unique int
}

// Collector reads species records from JSON files.
type Collector struct {
	files []string
}

// New creates a Collector for files, which are read in the given order.
func New(files ...string) *Collector {
	return &Collector{files: files}
}

// Files returns paths the Collector reads.
func (c *Collector) Files() []string {
	return c.files
}

// Collect reads all files and returns de-duplicated records in the order
// their scientific names were first seen. Missing or malformed files are
// skipped with a warning.
func (c *Collector) Collect() ([]species.Species, Stats) {
	var stats Stats
	var all []species.Species

	for _, path := range c.files {
		if !iofs.FileExists(path) {
			stats.Skipped++
			slog.Warn("File not found, skipping", "path", path)
			gn.Warn("File <em>%s</em> not found, skipping", path)
			continue
		}

		recs, err := iofs.ReadSpecies(path)
		if err != nil {
			stats.Skipped++
			slog.Warn("Cannot read file, skipping", "path", path, "error", err)
			gn.Warn("Cannot read <em>%s</em>, skipping", path)
			continue
		}

		stats.Files++
		stats.Records += len(recs)
		slog.Info("Read species", "path", path, "records", len(recs))
		all = append(all, recs...)
	}

	res := collect.Dedup(all)
	stats.Unique = len(res)
	return res, stats
}
