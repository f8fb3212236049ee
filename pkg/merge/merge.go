// Package merge fills Vietnamese common names of status records from law
// data records.
package merge

import (
	"strings"

	"github.com/gnames/conslaw/pkg/species"
)

// Index maps scientific names to Vietnamese common names. The first
// non-empty name added for a scientific name wins; later names for the
// same species are ignored.
type Index struct {
	names map[string]string
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{names: make(map[string]string)}
}

// Add indexes records in the given order. Records without a scientific
// name or without a common name are skipped.
func (idx *Index) Add(records []species.Species) {
	for _, v := range records {
		name := v.Name()
		common := strings.TrimSpace(v.CommonName.Value)
		if name == "" || common == "" {
			continue
		}
		if _, ok := idx.names[name]; ok {
			continue
		}
		idx.names[name] = common
	}
}

// Lookup returns the common name of a species and true, or false when the
// index does not know the name.
func (idx *Index) Lookup(name string) (string, bool) {
	res, ok := idx.names[strings.TrimSpace(name)]
	return res, ok
}

// Len returns the number of indexed scientific names.
func (idx *Index) Len() int {
	return len(idx.names)
}

// Stats summarize one Apply call.
type Stats struct {
	Total   int
	Matched int
}

// Unmatched is the number of records that got an empty common name.
func (s Stats) Unmatched() int {
	return s.Total - s.Matched
}

// Apply returns copies of targets with common_name replaced by the indexed
// Vietnamese name, or set to an explicit empty value when the index has no
// name. Every returned record has common_name_en. Targets are not
// modified, and applying the result again with the same index gives the
// same records.
func Apply(idx *Index, targets []species.Species) ([]species.Species, Stats) {
	res := make([]species.Species, len(targets))
	stats := Stats{Total: len(targets)}
	for i, v := range targets {
		out := v.Clone()
		name, ok := idx.Lookup(v.Name())
		if ok {
			stats.Matched++
		}
		out.CommonName = species.Field{Value: name}
		if out.CommonNameEn == nil {
			out.CommonNameEn = &species.Field{}
		}
		res[i] = out
	}
	return res, stats
}
