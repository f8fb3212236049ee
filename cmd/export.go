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
	"github.com/dustin/go-humanize"
	"github.com/gnames/conslaw/internal/ioexport"
	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/internal/iolaws"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// defaultExportFile is created in the data directory.
const defaultExportFile = "conslaw.sqlite"

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export [output]",
		Short: "Save law and status data to a SQLite database",
		Long: `Save species of law data files and status files to SQLite.

Law data files from ~/.config/conslaw/laws.yaml are read first, the IUCN
and Vietnam Red List status files after them. When a species is in
several files, the first non-empty value of every field is kept and law
entries of all files are listed in the same order.

The database has tables:
  - documents: legal documents of laws.yaml
  - species: one row per scientific name
  - laws: conservation status entries of species

An existing database is replaced.

Examples:
  conslaw export
  conslaw export /tmp/conslaw.sqlite`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addDataDirFlag(exportCmd)

	return exportCmd
}

func runExport(cmd *cobra.Command, args []string) error {
	dataDirFlag(cmd)

	output := cfg.DataPath(defaultExportFile)
	if len(args) > 0 {
		output = args[0]
	}

	lc, err := iolaws.New(cfg).Load()
	if err != nil {
		return err
	}

	var statusFiles []string
	for _, v := range []string{cfg.IUCNPath(), cfg.VNRedListPath()} {
		if iofs.FileExists(v) {
			statusFiles = append(statusFiles, v)
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	res, err := ioexport.New(output, lc, statusFiles...).Export(ctx)
	if err != nil {
		return err
	}

	gn.Info(
		"Exported <em>%s</em> species with %s law entries "+
			"from %d files to <em>%s</em>",
		humanize.Comma(int64(res.Species)),
		humanize.Comma(int64(res.Laws)),
		res.Collect.Files, output,
	)
	return nil
}
