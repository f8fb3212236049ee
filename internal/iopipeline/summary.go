package iopipeline

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/conslaw/pkg/status"
	"github.com/gnames/gnfmt"
)

// Summary counts outcomes of one run.
type Summary struct {
	Source string
	RunID  string

	Total        int
	Success      int
	NotFound     int
	Errors       int
	Unauthorized int

	// Categories counts results by category, sentinels included.
	Categories map[string]int

	Duration time.Duration
}

func newSummary(source, runID string) Summary {
	return Summary{
		Source:     source,
		RunID:      runID,
		Categories: make(map[string]int),
	}
}

func (s *Summary) add(res status.Result) {
	s.Total++
	s.Categories[res.Category]++
	switch res.Outcome {
	case status.Success:
		s.Success++
	case status.NotFound:
		s.NotFound++
	default:
		s.Errors++
		if res.IsUnauthorized() {
			s.Unauthorized++
		}
	}
}

// String renders the summary for the terminal, with gn markup.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<em>%s</em> summary\n", s.Source)
	fmt.Fprintf(&sb, "  Total queried: %s\n", humanize.Comma(int64(s.Total)))
	fmt.Fprintf(&sb, "  Found:         %s\n", humanize.Comma(int64(s.Success)))
	fmt.Fprintf(&sb, "  Not found:     %s\n", humanize.Comma(int64(s.NotFound)))
	fmt.Fprintf(&sb, "  Errors:        %s\n", humanize.Comma(int64(s.Errors)))
	if s.Unauthorized > 0 {
		fmt.Fprintf(&sb, "  <warn>Unauthorized: %s, check the API token</warn>\n",
			humanize.Comma(int64(s.Unauthorized)))
	}
	if len(s.Categories) > 0 {
		sb.WriteString("  By category:\n")
		for _, k := range slices.Sorted(maps.Keys(s.Categories)) {
			fmt.Fprintf(&sb, "    %-10s %s\n", k,
				humanize.Comma(int64(s.Categories[k])))
		}
	}
	fmt.Fprintf(&sb, "  Elapsed time:  %s", gnfmt.TimeString(s.Duration.Seconds()))
	return sb.String()
}
