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
	"log/slog"
	"slices"

	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/internal/iopipeline"
	"github.com/gnames/conslaw/internal/iovnredlist"
	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/conslaw/pkg/format"
	"github.com/gnames/conslaw/pkg/status"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// vnRedListIndent is the indentation of the Vietnam Red List status file.
const vnRedListIndent = 2

// getVNRedListCmd returns the vnredlist command.
func getVNRedListCmd() *cobra.Command {
	var (
		names  []string
		output string
	)

	vnCmd := &cobra.Command{
		Use:     "vnredlist [files...]",
		Aliases: []string{"vn"},
		Short:   "Fetch Vietnam Red List categories of species",
		Long: `Fetch conservation status from the Vietnam Red List website.

This command:
  1. Collects unique scientific names from law data files and from the
     IUCN status file when it exists
  2. Opens the species page of every name, retrying once with a
     genus-species slug when the page is missing
  3. Extracts the category from the page
  4. Saves found species to a JSON file and prints a summary

Examples:
  conslaw vnredlist
  conslaw vnredlist nd06_2019.json -o vnredlist.json
  conslaw vnredlist -n "Panthera tigris corbetti"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runVNRedList(cmd, args, names, output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	vnCmd.Flags().StringSliceVarP(&names, "name", "n", nil,
		"query names directly and print results")
	vnCmd.Flags().StringVarP(&output, "output", "o", "",
		"output file (default: data.vnredlist_file from config)")
	addDelayFlag(vnCmd, config.New().VNRedList.Delay)
	addDataDirFlag(vnCmd)

	return vnCmd
}

func runVNRedList(
	cmd *cobra.Command,
	args []string,
	names []string,
	output string,
) error {
	dataDirFlag(cmd)
	if d, ok := delayFlag(cmd); ok {
		cfg.Update([]config.Option{config.OptVNRedListDelay(d)})
	}

	ctx, cancel := signalContext()
	defer cancel()

	cache := status.NewCache()
	fetcher := iovnredlist.New(cfg, cache)
	if len(names) > 0 {
		queryNames(ctx, cmd.OutOrStdout(), fetcher, names)
		return nil
	}

	files, err := lawFiles(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		files = withStatusFile(files, cfg.IUCNPath())
	}

	recs, err := collectSpecies(files)
	if err != nil {
		return err
	}

	if output == "" {
		output = cfg.VNRedListPath()
	}

	err = runStatus(
		ctx, fetcher, format.VNRedList, recs, output, vnRedListIndent,
		iopipeline.OptDelay(cfg.VNRedList.Delay),
	)
	slog.Debug("Status cache", "names", cache.Len(), "hits", cache.Hits())
	return err
}

// withStatusFile appends an existing status file to law files.
func withStatusFile(files []string, path string) []string {
	if !iofs.FileExists(path) || slices.Contains(files, path) {
		return files
	}
	return append(slices.Clip(files), path)
}
