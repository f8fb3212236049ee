// Package iomerge fills Vietnamese common names of a status file from law
// data files and rewrites the status file.
package iomerge

import (
	"log/slog"
	"strings"

	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/pkg/merge"
	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/gn"
)

// Indent of the rewritten status file.
const Indent = 4

// FileNames is the number of non-empty common names in one law file.
type FileNames struct {
	Path  string
	Names int
}

// Result describes one merge.
type Result struct {
	Stats merge.Stats

	// Indexed is the number of scientific names with a common name.
	Indexed int

	Files []FileNames

	// Examples are the first merged records.
	Examples []species.Species
}

// Merger updates target with common names from law files.
type Merger struct {
	target   string
	lawFiles []string
}

// New creates a Merger. Law files are read in the given order, so the
// first file with a non-empty common name for a species wins.
func New(target string, lawFiles ...string) *Merger {
	return &Merger{target: target, lawFiles: lawFiles}
}

// Merge reads law files, updates the target and writes it back. Missing
// or malformed law files are skipped with a warning. Running Merge again
// on the same files changes nothing.
func (m *Merger) Merge() (Result, error) {
	var res Result
	idx := merge.NewIndex()

	for _, path := range m.lawFiles {
		if !iofs.FileExists(path) {
			slog.Warn("Law file not found, skipping", "path", path)
			gn.Warn("File <em>%s</em> not found, skipping", path)
			continue
		}
		recs, err := iofs.ReadSpecies(path)
		if err != nil {
			slog.Warn("Cannot read law file, skipping", "path", path, "error", err)
			gn.Warn("Cannot read <em>%s</em>, skipping", path)
			continue
		}
		idx.Add(recs)
		fn := FileNames{Path: path, Names: countNames(recs)}
		res.Files = append(res.Files, fn)
		slog.Info("Read common names", "path", path, "names", fn.Names)
	}
	res.Indexed = idx.Len()

	if !iofs.FileExists(m.target) {
		return res, TargetNotFoundError(m.target)
	}

	targets, err := iofs.ReadSpecies(m.target)
	if err != nil {
		return res, err
	}

	merged, stats := merge.Apply(idx, targets)
	res.Stats = stats

	if err = iofs.WriteJSON(m.target, merged, Indent); err != nil {
		return res, err
	}
	slog.Info("Merged common names",
		"path", m.target,
		"total", stats.Total,
		"matched", stats.Matched,
		"unmatched", stats.Unmatched(),
	)

	res.Examples = merged[:min(3, len(merged))]
	return res, nil
}

func countNames(recs []species.Species) int {
	var res int
	for _, v := range recs {
		if strings.TrimSpace(v.CommonName.Value) != "" {
			res++
		}
	}
	return res
}
