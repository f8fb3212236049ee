/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/conslaw/internal/iocollect"
	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/internal/iopipeline"
	"github.com/gnames/conslaw/pkg/format"
	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/conslaw/pkg/status"
	"github.com/gnames/gn"
)

// collectSpecies reads species from files and fails when there are none.
func collectSpecies(files []string) ([]species.Species, error) {
	recs, stats := iocollect.New(files...).Collect()
	if len(recs) == 0 {
		return nil, iocollect.NoSpeciesError(files)
	}

	gn.Info(
		"Collected <em>%s</em> species from <em>%d</em> files "+
			"(%d skipped, %s records)",
		humanize.Comma(int64(stats.Unique)), stats.Files, stats.Skipped,
		humanize.Comma(int64(stats.Records)),
	)
	return recs, nil
}

// runStatus queries every species, writes successful results to output
// and prints the summary.
func runStatus(
	ctx context.Context,
	f status.Fetcher,
	fn format.Func,
	recs []species.Species,
	output string,
	indent int,
	opts ...iopipeline.Option,
) error {
	opts = append(opts, iopipeline.OptProgress(true))
	p := iopipeline.New(f, fn, opts...)

	gn.Info("Querying <em>%s</em> for %s species...",
		f.Source(), humanize.Comma(int64(len(recs))))
	res, sum, err := p.Run(ctx, recs)
	if err != nil {
		return err
	}

	if err = iofs.WriteJSON(output, res, indent); err != nil {
		return err
	}

	gn.Info(sum.String())
	gn.Info("Saved <em>%s</em> species to <em>%s</em>",
		humanize.Comma(int64(len(res))), output)
	slog.Info("Status file saved",
		"source", f.Source(),
		"run_id", sum.RunID,
		"path", output,
		"species", len(res),
	)
	return nil
}

// queryNames prints results of direct queries without writing files.
func queryNames(
	ctx context.Context,
	w io.Writer,
	f status.Fetcher,
	names []string,
) {
	for _, name := range names {
		res := f.Fetch(ctx, name)
		switch res.Outcome {
		case status.Success:
			fmt.Fprintf(w, "%s\t%s", res.ScientificName, res.Category)
			if res.CommonName != "" {
				fmt.Fprintf(w, "\t%s", res.CommonName)
			}
			if res.URL != "" {
				fmt.Fprintf(w, "\t%s", res.URL)
			}
			fmt.Fprintln(w)
		case status.NotFound:
			fmt.Fprintf(w, "%s\t%s\n", res.ScientificName, res.Category)
		default:
			fmt.Fprintf(w, "%s\t%s\t%s\n", res.ScientificName, res.Category, res.Error)
		}
	}
}
